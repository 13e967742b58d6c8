package fill

import "formforge_backend/internal/model"

// BucketUncategorized 待分类桶的固定键，所有条目初始都在这里。
const BucketUncategorized = "uncategorized"

// CategorizeSheet 分类题答题卡：每个分类一个桶，外加待分类桶。
// 任一时刻每个条目恰好位于一个桶中。
type CategorizeSheet struct {
	q       *model.CategorizeQuestion
	buckets map[string][]string
}

func newCategorizeSheet(q *model.CategorizeQuestion) *CategorizeSheet {
	buckets := make(map[string][]string, len(q.Categories)+1)
	initial := make([]string, 0, len(q.Items))
	for _, item := range q.Items {
		initial = append(initial, item.ID)
	}
	buckets[BucketUncategorized] = initial
	for _, cat := range q.Categories {
		buckets[cat.ID] = []string{}
	}
	return &CategorizeSheet{q: q, buckets: buckets}
}

// MoveItem 把条目拖进目标桶：先从所有桶移除，再追加到目标桶末尾。
// 条目或目标桶不存在时返回 false，状态不变。
func (s *CategorizeSheet) MoveItem(itemID, bucketID string) bool {
	if _, ok := s.q.Item(itemID); !ok {
		return false
	}
	if _, ok := s.buckets[bucketID]; !ok {
		return false
	}
	for key, ids := range s.buckets {
		for i, id := range ids {
			if id == itemID {
				s.buckets[key] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
	}
	s.buckets[bucketID] = append(s.buckets[bucketID], itemID)
	return true
}

// Bucket 返回指定桶内条目 id 的副本。
func (s *CategorizeSheet) Bucket(bucketID string) ([]string, bool) {
	ids, ok := s.buckets[bucketID]
	if !ok {
		return nil, false
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out, true
}

// Buckets 返回全部桶的快照，作为该题的答案载荷。
func (s *CategorizeSheet) Buckets() map[string][]string {
	out := make(map[string][]string, len(s.buckets))
	for key, ids := range s.buckets {
		cp := make([]string, len(ids))
		copy(cp, ids)
		out[key] = cp
	}
	return out
}
