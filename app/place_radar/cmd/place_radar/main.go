package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/iWorld-y/place_radar/app/place_radar/pkg/config"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/logger"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/search/factory"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/submitter"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/view"
)

var (
	confPath string
	query    string
	output   string
)

func init() {
	flag.StringVar(&confPath, "conf", "configs/config.yaml", "config path, eg: -conf config.yaml")
	flag.StringVar(&query, "q", "", "query to submit; read one query per line from stdin when empty")
	flag.StringVar(&output, "out", "", "html snapshot path, overrides config output")
}

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.LoadConfig(confPath)
	if err != nil {
		log.Fatalf("无法加载配置文件: %v", err)
	}
	if output != "" {
		cfg.Output = output
	}

	// 2. 初始化日志
	if err = logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	logger.Log.Info("启动地点雷达...")

	// 3. 初始化搜索后端
	searcher, err := factory.NewSearcher(cfg)
	if err != nil {
		logger.Log.Fatalf("搜索后端初始化失败: %v", err)
	}

	// 4. 初始化页面与提交器
	page, err := view.NewPage()
	if err != nil {
		logger.Log.Fatalf("页面初始化失败: %v", err)
	}
	limiter := submitter.NewLimiter(cfg.Concurrency.QPS, cfg.Concurrency.RPM)
	if limiter != nil {
		logger.Log.Infof("限流器已配置: Limit=%.2f req/s, Burst=%d", limiter.Limit(), limiter.Burst())
	}
	sub := submitter.New(searcher, page.Results(), submitter.WithLimiter(limiter))

	// 5. 提交查询，每次提交都会整体替换结果区
	ctx := context.Background()
	submit := func(q string) {
		page.SetQuery(q)
		if err := sub.Submit(ctx, q); err != nil && !errors.Is(err, submitter.ErrStale) {
			logger.Log.Warnf("查询失败 [%s]: %v", q, err)
			return
		}
		logger.Log.Infof("查询完成 [%s]", q)
	}

	if query != "" {
		submit(query)
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			submit(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			logger.Log.Errorf("读取标准输入失败: %v", err)
		}
	}

	// 6. 输出 HTML 快照
	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0755); err != nil {
		logger.Log.Fatalf("创建输出目录失败: %v", err)
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		logger.Log.Fatalf("创建输出文件失败: %v", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		logger.Log.Fatalf("生成 HTML 失败: %v", err)
	}
	logger.Log.Infof("✅ 结果页已生成: %s", cfg.Output)
}
