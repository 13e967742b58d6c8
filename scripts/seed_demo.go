// 写入演示表单的脚本
//
// 在空库上创建一张包含三种题型的已发布表单，方便前端联调。
// 重复执行会创建多张表单。
//
// 用法: go run scripts/seed_demo.go

package main

import (
	"formforge_backend/internal/builder"
	"formforge_backend/internal/config"
	"formforge_backend/internal/model"
	"formforge_backend/internal/repository"
	"formforge_backend/internal/service"
	"formforge_backend/pkg/database"
	"formforge_backend/pkg/logger"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	draft := builder.NewDraft()
	draft.SetTitle("Demo Form")
	draft.SetDescription("包含三种题型的演示表单")

	catID, _ := draft.AddQuestion(model.QuestionCategorize)
	cat, _ := draft.Categorize(catID)
	cat.SetQuestion("把下列动物归类")
	mammals, _ := cat.AddCategory("哺乳动物")
	birds, _ := cat.AddCategory("鸟类")
	whale, _ := cat.AddItem("鲸鱼")
	cat.SetItemCategory(whale, mammals)
	sparrow, _ := cat.AddItem("麻雀")
	cat.SetItemCategory(sparrow, birds)

	clozeID, _ := draft.AddQuestion(model.QuestionCloze)
	cloze, _ := draft.Cloze(clozeID)
	cloze.SetText("The quick brown fox jumps over the lazy dog")
	cloze.Select(4, 9)
	cloze.CreateBlank()
	cloze.Select(35, 39)
	cloze.CreateBlank()

	compID, _ := draft.AddQuestion(model.QuestionComprehension)
	comp, _ := draft.Comprehension(compID)
	comp.SetPassage("Go 是一门静态类型的编译型语言，以并发原语和简洁的工具链著称。")
	mcqID, _ := comp.AddMCQ("Go 是什么类型的语言？")
	opts := comp.Question().Questions[0].Options
	comp.UpdateOptionText(mcqID, opts[0].ID, "静态类型")
	comp.UpdateOptionText(mcqID, opts[1].ID, "动态类型")

	if err := draft.Validate(); err != nil {
		log.Fatalf("演示表单未通过校验: %v", err)
	}

	store := repository.NewFormRepository(db)
	formService := service.NewFormService(store, nil, &cfg)

	published := true
	form := draft.Form()
	req := service.FormReq{
		Title:       &form.Title,
		Description: &form.Description,
		Questions:   &form.Questions,
		IsPublished: &published,
	}

	created, err := formService.CreateForm(req)
	if err != nil {
		log.Fatalf("创建演示表单失败: %v", err)
	}

	log.Printf("演示表单已创建: id=%s shareUrl=%s", created.ID, *created.ShareURL)
}
