package service

import (
	"encoding/json"
	"fmt"
	"formforge_backend/internal/model"
	"formforge_backend/internal/repository"
	"formforge_backend/internal/util"
)

type ResponseService struct {
	Store     repository.ResponseStore
	FormStore repository.FormStore
}

func NewResponseService(store repository.ResponseStore, formStore repository.FormStore) *ResponseService {
	return &ResponseService{Store: store, FormStore: formStore}
}

// ResponseReq 答卷提交请求体。
type ResponseReq struct {
	Answers   model.AnswerMap `json:"answers" binding:"required"`
	UserEmail string          `json:"userEmail"`
}

// Submit 在已发布的表单下创建答卷。表单不存在或未发布统一按不存在处理，
// 避免暴露未发布表单的存在性。
func (s *ResponseService) Submit(formID string, req ResponseReq) (*model.FormResponse, error) {
	form, err := s.FormStore.FindByID(formID)
	if err != nil {
		return nil, err
	}
	if !form.IsPublished {
		return nil, util.ErrFormNotFound
	}

	if err := validateAnswers(form, req.Answers); err != nil {
		return nil, err
	}

	resp := &model.FormResponse{
		FormID:    formID,
		Answers:   req.Answers,
		UserEmail: req.UserEmail,
	}
	if err := s.Store.Create(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *ResponseService) ListByFormID(formID string) ([]model.FormResponse, error) {
	if _, err := s.FormStore.FindByID(formID); err != nil {
		return nil, err
	}
	return s.Store.ListByFormID(formID)
}

// validateAnswers 按题型校验答案载荷的形状与引用完整性。
func validateAnswers(form *model.Form, answers model.AnswerMap) error {
	errs := &model.ValidationErrors{}

	for qid, payload := range answers {
		question, ok := form.Question(qid)
		if !ok {
			errs.Add("answers."+qid, "unknown question")
			continue
		}

		switch q := question.(type) {
		case *model.CategorizeQuestion:
			validateCategorizeAnswer(q, qid, payload, errs)
		case *model.ClozeQuestion:
			validateClozeAnswer(q, qid, payload, errs)
		case *model.ComprehensionQuestion:
			validateComprehensionAnswer(q, qid, payload, errs)
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// 分类题答案：桶 id（uncategorized 或分类 id）→ 条目 id 列表，每个条目至多出现一次。
func validateCategorizeAnswer(q *model.CategorizeQuestion, qid string, payload json.RawMessage, errs *model.ValidationErrors) {
	var buckets map[string][]string
	if err := json.Unmarshal(payload, &buckets); err != nil {
		errs.Add("answers."+qid, "expected a map of bucket id to item ids")
		return
	}

	seen := make(map[string]bool)
	for bucketID, itemIDs := range buckets {
		if bucketID != "uncategorized" {
			if _, ok := q.Category(bucketID); !ok {
				errs.Add(fmt.Sprintf("answers.%s.%s", qid, bucketID), "unknown category")
				continue
			}
		}
		for _, itemID := range itemIDs {
			if _, ok := q.Item(itemID); !ok {
				errs.Add(fmt.Sprintf("answers.%s.%s", qid, bucketID), fmt.Sprintf("unknown item %q", itemID))
				continue
			}
			if seen[itemID] {
				errs.Add(fmt.Sprintf("answers.%s.%s", qid, bucketID), fmt.Sprintf("item %q placed more than once", itemID))
			}
			seen[itemID] = true
		}
	}
}

// 填空题答案：填空位 id → 填入的词。
func validateClozeAnswer(q *model.ClozeQuestion, qid string, payload json.RawMessage, errs *model.ValidationErrors) {
	var words map[string]string
	if err := json.Unmarshal(payload, &words); err != nil {
		errs.Add("answers."+qid, "expected a map of blank id to word")
		return
	}

	for blankID := range words {
		if _, ok := q.Blank(blankID); !ok {
			errs.Add(fmt.Sprintf("answers.%s.%s", qid, blankID), "unknown blank")
		}
	}
}

// 阅读理解答案：子题 id → 所选选项 id。
func validateComprehensionAnswer(q *model.ComprehensionQuestion, qid string, payload json.RawMessage, errs *model.ValidationErrors) {
	var choices map[string]string
	if err := json.Unmarshal(payload, &choices); err != nil {
		errs.Add("answers."+qid, "expected a map of question id to option id")
		return
	}

	for mcqID, optionID := range choices {
		mcq, ok := q.MCQ(mcqID)
		if !ok {
			errs.Add(fmt.Sprintf("answers.%s.%s", qid, mcqID), "unknown question")
			continue
		}
		if _, ok := mcq.Option(optionID); !ok {
			errs.Add(fmt.Sprintf("answers.%s.%s", qid, mcqID), fmt.Sprintf("unknown option %q", optionID))
		}
	}
}
