package fill

import "formforge_backend/internal/model"

// ClozeSheet 填空题答题卡。两种作答方式并存：
// 直接键入，或从词块池拖放（每个词块对应一个填空位的原词，只能用一次）。
type ClozeSheet struct {
	q      *model.ClozeQuestion
	filled map[string]string
	// placed[blankID] = 占用该空的词块（即某个 blank 的 id）
	placed map[string]string
}

func newClozeSheet(q *model.ClozeQuestion) *ClozeSheet {
	return &ClozeSheet{
		q:      q,
		filled: make(map[string]string, len(q.Blanks)),
		placed: make(map[string]string, len(q.Blanks)),
	}
}

// SetTyped 直接在空位里键入答案；会顶掉该空位上已放置的词块。
func (s *ClozeSheet) SetTyped(blankID, text string) bool {
	if _, ok := s.q.Blank(blankID); !ok {
		return false
	}
	delete(s.placed, blankID)
	if text == "" {
		delete(s.filled, blankID)
		return true
	}
	s.filled[blankID] = text
	return true
}

// AvailableTokens 返回池中尚未放置的词块，按题目的空位顺序。
func (s *ClozeSheet) AvailableTokens() []string {
	used := make(map[string]bool, len(s.placed))
	for _, tokenID := range s.placed {
		used[tokenID] = true
	}
	out := make([]string, 0, len(s.q.Blanks))
	for _, b := range s.q.Blanks {
		if !used[b.ID] {
			out = append(out, b.Word)
		}
	}
	return out
}

// PlaceToken 把词块放进空位。词块已被其他空位占用时放置失败；
// 目标空位上原有的词块先回池。
func (s *ClozeSheet) PlaceToken(blankID, tokenID string) bool {
	if _, ok := s.q.Blank(blankID); !ok {
		return false
	}
	token, ok := s.q.Blank(tokenID)
	if !ok {
		return false
	}
	for holder, placed := range s.placed {
		if placed == tokenID && holder != blankID {
			return false
		}
	}
	s.placed[blankID] = tokenID
	s.filled[blankID] = token.Word
	return true
}

// RemoveToken 把空位上的词块拿回池里；空位被清空。
func (s *ClozeSheet) RemoveToken(blankID string) bool {
	if _, ok := s.placed[blankID]; !ok {
		return false
	}
	delete(s.placed, blankID)
	delete(s.filled, blankID)
	return true
}

// Filled 返回空位到答案文本的快照，作为该题的答案载荷。
func (s *ClozeSheet) Filled() map[string]string {
	out := make(map[string]string, len(s.filled))
	for id, text := range s.filled {
		out[id] = text
	}
	return out
}
