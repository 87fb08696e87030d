package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/starstorm/pkg/app"
	"github.com/gonewx/starstorm/pkg/config"
	"github.com/gonewx/starstorm/pkg/game"
)

func main() {
	verbose := flag.Bool("verbose", false, "输出详细日志")
	fullscreen := flag.Bool("fullscreen", false, "全屏启动")
	configPath := flag.String("config", "", "玩法配置文件路径（YAML），留空使用内置默认值")
	watch := flag.Bool("watch", false, "监听配置文件变更并热重载（需配合 --config）")
	flag.Parse()

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		Fullscreen:  *fullscreen,
		ConfigPath:  *configPath,
		WatchConfig: *watch,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("星际风暴 StarStorm")

	// 游戏主循环，窗口关闭后返回
	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}

	// 窗口已关闭：给当前场景一次结算存档的机会
	if saveable, ok := gameApp.GetSceneManager().GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[Main] 退出时保存失败")
		}
	}
}
