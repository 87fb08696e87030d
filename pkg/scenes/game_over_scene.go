package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/starstorm/pkg/config"
	"github.com/gonewx/starstorm/pkg/game"
)

const (
	// DebugPrint 字形尺寸（像素）
	glyphWidth  = 6
	glyphHeight = 16

	// 标题放大倍数
	titleScale = 4.0
	titleY     = 150.0

	// 重开提示闪烁：周期内前 0.8 秒可见
	blinkPeriod  = 1.2
	blinkVisible = 0.8
)

// 结算画面底色，比游玩场景更沉的暗红黑
var gameOverColor = color.RGBA{R: 24, G: 8, B: 12, A: 255}

// GameOverScene 是一局结束后的结算场景
// 展示本局得分与历史纪录，按 Enter 重开一局。
// 结算（累计局数、刷新最高分、落盘）在场景创建时一次性完成。
type GameOverScene struct {
	sceneManager *game.SceneManager
	gameState    *game.GameState

	finalScore     int
	highScore      int
	totalRuns      int
	isNewHighScore bool

	// 标题文字预渲染后放大绘制，避免每帧重建
	titleImage *ebiten.Image

	blinkTimer float64
}

// NewGameOverScene 创建结算场景并立即结算本局
//
// 结算内容：累加游玩局数、记录本局得分、刷新最高分并持久化。
// 存档管理器缺失时跳过持久化，本局得分直接当作最高分展示。
//
// 参数:
//   - rm: 资源管理器（当前结算画面为纯文字，保留参数与其他场景签名一致）
//   - sm: 场景管理器，用于重开时切回游玩场景
//
// 返回:
//   - *GameOverScene: 新创建的结算场景
func NewGameOverScene(rm *game.ResourceManager, sm *game.SceneManager) *GameOverScene {
	gameState := game.GetGameState()

	scene := &GameOverScene{
		sceneManager: sm,
		gameState:    gameState,
		finalScore:   gameState.GetScore(),
	}

	if saveManager := gameState.GetSaveManager(); saveManager != nil {
		scene.isNewHighScore = saveManager.RecordRun(scene.finalScore)
		scene.highScore = saveManager.GetHighScore()
		scene.totalRuns = saveManager.GetTotalRuns()
		if err := saveManager.Save(); err != nil {
			log.Printf("[GameOverScene] 存档保存失败: %v", err)
		}
	} else {
		scene.highScore = scene.finalScore
		scene.totalRuns = 1
	}

	if audioManager := gameState.GetAudioManager(); audioManager != nil {
		audioManager.StopMusic()
		audioManager.PlaySound(game.SoundGameOver)
	}

	scene.titleImage = renderTextImage("GAME OVER")

	log.Printf("[GameOverScene] 结算: 得分=%d 最高=%d 局数=%d 新纪录=%v",
		scene.finalScore, scene.highScore, scene.totalRuns, scene.isNewHighScore)
	return scene
}

// renderTextImage 把一行文字预渲染到恰好包住它的图像上
func renderTextImage(msg string) *ebiten.Image {
	img := ebiten.NewImage(len(msg)*glyphWidth, glyphHeight)
	ebitenutil.DebugPrint(img, msg)
	return img
}

// Update 推进结算场景
// 只做两件事：推进闪烁计时、监听重开按键
func (s *GameOverScene) Update(deltaTime float64) {
	s.blinkTimer += deltaTime

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.restart()
	}
}

// restart 重置单局状态并切回游玩场景
func (s *GameOverScene) restart() {
	log.Printf("[GameOverScene] 重新开始")
	s.gameState.ResetRun()
	s.sceneManager.LoadScene("game")
}

// Draw 绘制结算画面
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(gameOverColor)

	// 放大的标题
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(titleScale, titleScale)
	titleW := float64(s.titleImage.Bounds().Dx()) * titleScale
	op.GeoM.Translate((float64(config.GameWindowWidth)-titleW)/2, titleY)
	screen.DrawImage(s.titleImage, op)

	lineY := titleY + glyphHeight*titleScale + 40
	s.drawCenteredLine(screen, fmt.Sprintf("FINAL SCORE  %06d", s.finalScore), lineY)
	lineY += hudLineHeight

	bestLine := fmt.Sprintf("BEST SCORE   %06d", s.highScore)
	if s.isNewHighScore {
		bestLine += "  * NEW RECORD *"
	}
	s.drawCenteredLine(screen, bestLine, lineY)
	lineY += hudLineHeight

	s.drawCenteredLine(screen, fmt.Sprintf("RUNS PLAYED  %d", s.totalRuns), lineY)
	lineY += 3 * hudLineHeight

	if math.Mod(s.blinkTimer, blinkPeriod) < blinkVisible {
		s.drawCenteredLine(screen, "PRESS ENTER TO RESTART", lineY)
	}
}

// drawCenteredLine 在指定高度水平居中绘制一行文字
func (s *GameOverScene) drawCenteredLine(screen *ebiten.Image, msg string, y float64) {
	x := (config.GameWindowWidth - len(msg)*glyphWidth) / 2
	ebitenutil.DebugPrintAt(screen, msg, x, int(y))
}
