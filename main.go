package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fintrack/config"
	"fintrack/database"
	"fintrack/router"
	"fintrack/store"

	"github.com/joho/godotenv"
)

// @title 个人记账 API
// @version 1.0
// @description 个人收支记账服务：类别、收支记录、月度预算、仪表盘汇总与数据导出
// @host localhost:8080
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("fintrack v1.0.0")
		return
	}

	// .env 不存在时忽略
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("警告: 读取 .env 失败: %v", err)
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	config.PrintConfig(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("存储初始化失败: %v", err)
	}
	defer closeStore()

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: router.SetupRouter(ctx, cfg, st),
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Printf("收到信号 %s，正在关闭服务...", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("服务关闭失败: %v", err)
		}
		cancel()
	}()

	log.Printf("==========================================")
	log.Printf("  个人记账服务已启动")
	log.Printf("==========================================")
	log.Printf("  API接口:  http://localhost%s/api/", cfg.Server.Port)
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("==========================================")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("服务器启动失败: %v", err)
	}
	<-ctx.Done()
	log.Printf("服务已停止")
}

// openStore 按配置创建存储，返回的 close 函数用于释放数据库连接
func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		st := store.NewMemoryStore()
		if cfg.Seed.Enabled {
			st.Load(store.DefaultSeedDataFor(cfg.App.DefaultUserID))
			log.Printf("已加载示例数据")
		}
		return st, func() {}, nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := database.Close(db); err != nil {
			log.Printf("关闭数据库失败: %v", err)
		}
	}

	st := store.NewGormStore(db)
	if err := st.AutoMigrate(); err != nil {
		closeDB()
		return nil, nil, err
	}
	if cfg.Seed.Enabled {
		seeded, err := st.Seed(ctx, store.DefaultSeedDataFor(cfg.App.DefaultUserID))
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		if seeded {
			log.Printf("已写入示例数据")
		}
	}
	return st, closeDB, nil
}
