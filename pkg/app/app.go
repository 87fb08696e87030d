// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/starstorm/pkg/config"
	"github.com/gonewx/starstorm/pkg/game"
	"github.com/gonewx/starstorm/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Fullscreen 启动时直接进入全屏
	Fullscreen bool
	// ConfigPath 玩法配置文件路径，为空则使用内置默认值
	ConfigPath string
	// WatchConfig 监听玩法配置文件变更并热重载（开发期调参用）
	WatchConfig bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager

	// 玩法调参：所有系统共享这一个实例，热重载时原地覆盖
	gameplayCfg   *config.GameplayConfig
	configPath    string
	configWatcher *config.ConfigWatcher

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 玩法调参：无配置文件时使用内置默认值
	gameplayCfg := config.DefaultGameplayConfig()
	if cfg.ConfigPath != "" {
		loaded, err := config.LoadGameplayConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("玩法配置加载失败: %w", err)
		}
		gameplayCfg = loaded
		log.Printf("[App] 玩法配置: %s", cfg.ConfigPath)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(game.SampleRate)

	// 资源管理器：精灵与音效全部程序化生成，无外部资源文件
	resourceManager := game.NewResourceManager(audioContext)

	// gdata 跨平台持久化（设置 + 战绩）
	// 打开失败降级为内存模式：可以游玩，只是不落盘
	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: "starstorm"}); err != nil {
		log.Printf("[App] Warning: 持久化存储不可用: %v (降级为内存模式)", err)
	} else {
		gdataManager = m
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}
	saveManager, err := game.NewSaveManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("存档管理器初始化失败: %w", err)
	}

	// 组装全局状态：场景和系统通过 GameState 访问各管理器
	gameState := game.GetGameState()
	gameState.SetSettingsManager(settingsManager)
	gameState.SetSaveManager(saveManager)

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	gameState.SetAudioManager(audioManager)
	log.Printf("[App] AudioManager initialized")

	// 预合成音效与音乐，避免首次播放时的合成卡顿
	audioManager.PreloadSounds([]string{
		game.SoundPlayerShoot,
		game.SoundEnemyShoot,
		game.SoundPlayerHit,
		game.SoundExplosion,
		game.SoundGameOver,
	})
	audioManager.PreloadMusic([]string{game.MusicBattle})

	// 创建场景管理器并注册场景工厂
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(sceneID string) game.Scene {
		switch sceneID {
		case "game":
			return scenes.NewGameScene(resourceManager, sceneManager, gameplayCfg)
		case "gameover":
			return scenes.NewGameOverScene(resourceManager, sceneManager)
		default:
			log.Printf("[App] 未知场景ID: %s", sceneID)
			return nil
		}
	})
	sceneManager.LoadScene("game")

	app := &App{
		sceneManager: sceneManager,
		gameplayCfg:  gameplayCfg,
		configPath:   cfg.ConfigPath,
		verbose:      cfg.Verbose,
	}

	// 开发期热重载：配置文件保存后下一帧生效
	if cfg.WatchConfig && cfg.ConfigPath != "" {
		watcher, err := config.NewConfigWatcher(cfg.ConfigPath)
		if err != nil {
			log.Printf("[App] Warning: 配置监听启动失败: %v", err)
		} else {
			app.configWatcher = watcher
			log.Printf("[App] 配置热重载已启用: %s", cfg.ConfigPath)
		}
	}

	if cfg.Fullscreen || settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return app, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.pollConfigWatcher()

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// pollConfigWatcher 非阻塞消费配置变更通知
// 重载结果原地覆盖共享的配置结构体，持有该指针的系统下一帧起用新值
func (a *App) pollConfigWatcher() {
	if a.configWatcher == nil {
		return
	}

	select {
	case <-a.configWatcher.Events:
		loaded, err := config.LoadGameplayConfig(a.configPath)
		if err != nil {
			log.Printf("[App] 配置重载失败，保留当前值: %v", err)
			return
		}
		*a.gameplayCfg = *loaded
		log.Printf("[App] 配置已热重载: %s", a.configPath)
	case err := <-a.configWatcher.Errors:
		log.Printf("[App] 配置监听错误: %v", err)
	default:
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear // 使用线性滤波减少锯齿和模糊
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 释放应用持有的资源（配置监听器等）
func (a *App) Close() {
	if a.configWatcher != nil {
		_ = a.configWatcher.Close()
	}
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存存档
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
