// @title FormForge 后端 API
// @version 1.0
// @description 表单构建与填写平台的后端服务器。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"formforge_backend/internal/app"
	"formforge_backend/internal/config"
	"formforge_backend/pkg/configwatcher"
	"formforge_backend/pkg/logger"
	"log"

	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	// 热加载可在线调整的配置项
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		reloaded, ok := newCfg.(*config.Config)
		if !ok {
			return
		}
		cfg.Upload.MaxSizeMB = reloaded.Upload.MaxSizeMB
		cfg.Share.CacheTTLMinutes = reloaded.Share.CacheTTLMinutes
		logger.Log.Info("Config reloaded",
			zap.Int("upload_max_size_mb", cfg.Upload.MaxSizeMB),
			zap.Int("share_cache_ttl_minutes", cfg.Share.CacheTTLMinutes))
	})

	application.Run()
}
