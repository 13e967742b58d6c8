package fill

import "formforge_backend/internal/model"

// ComprehensionSheet 阅读理解题答题卡：每道子题最多选中一个选项。
type ComprehensionSheet struct {
	q        *model.ComprehensionQuestion
	selected map[string]string
}

func newComprehensionSheet(q *model.ComprehensionQuestion) *ComprehensionSheet {
	return &ComprehensionSheet{
		q:        q,
		selected: make(map[string]string, len(q.Questions)),
	}
}

// Select 为子题选择一个选项，覆盖之前的选择。
func (s *ComprehensionSheet) Select(mcqID, optionID string) bool {
	mcq, ok := s.q.MCQ(mcqID)
	if !ok {
		return false
	}
	if _, ok := mcq.Option(optionID); !ok {
		return false
	}
	s.selected[mcqID] = optionID
	return true
}

// Clear 清除子题的选择。
func (s *ComprehensionSheet) Clear(mcqID string) {
	delete(s.selected, mcqID)
}

// Selected 返回子题到选项的快照，作为该题的答案载荷。
func (s *ComprehensionSheet) Selected() map[string]string {
	return copyStringMap(s.selected)
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
