package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 精灵资源ID
// 所有精灵都在首次请求时程序化生成，游戏不携带任何图片资源文件
const (
	SpritePlayer       = "IMAGE_PLAYER"        // 玩家战机（128x128 图集，缩放 0.5 后为 64x64）
	SpriteEnemyFighter = "IMAGE_ENEMY_FIGHTER" // 战斗机（256x256 图集，缩放 0.5 后为 128x128）
	SpriteEnemyRaider  = "IMAGE_ENEMY_RAIDER"  // 突袭机
	SpriteEnemyGunship = "IMAGE_ENEMY_GUNSHIP" // 炮艇
	SpritePlayerBullet = "IMAGE_PLAYER_BULLET" // 玩家子弹
	SpriteEnemyBullet  = "IMAGE_ENEMY_BULLET"  // 敌机子弹
	SpriteStar         = "IMAGE_STAR"          // 背景星点
)

// spriteSpec 描述一个程序化生成精灵的尺寸和配色
type spriteSpec struct {
	width  int
	height int
	base   color.RGBA // 主体颜色
	accent color.RGBA // 中心高亮颜色
}

// 各精灵的生成参数
// 战机图集按两倍尺寸生成，实体工厂以 0.5 缩放得到世界尺寸
var spriteSpecs = map[string]spriteSpec{
	SpritePlayer:       {128, 128, color.RGBA{0x3c, 0x8c, 0xe6, 0xff}, color.RGBA{0xbe, 0xe6, 0xff, 0xff}},
	SpriteEnemyFighter: {256, 256, color.RGBA{0xc8, 0x3c, 0x3c, 0xff}, color.RGBA{0xff, 0xa0, 0x6e, 0xff}},
	SpriteEnemyRaider:  {256, 256, color.RGBA{0xb4, 0x64, 0xdc, 0xff}, color.RGBA{0xe6, 0xc8, 0xff, 0xff}},
	SpriteEnemyGunship: {256, 256, color.RGBA{0x64, 0x64, 0x78, 0xff}, color.RGBA{0xc8, 0xc8, 0xdc, 0xff}},
	SpritePlayerBullet: {8, 16, color.RGBA{0xff, 0xe6, 0x64, 0xff}, color.RGBA{0xff, 0xff, 0xc8, 0xff}},
	SpriteEnemyBullet:  {8, 8, color.RGBA{0xff, 0x50, 0x50, 0xff}, color.RGBA{0xff, 0xb4, 0xb4, 0xff}},
	SpriteStar:         {2, 2, color.RGBA{0xff, 0xff, 0xff, 0xff}, color.RGBA{0xff, 0xff, 0xff, 0xff}},
}

// ResourceManager 负责集中管理游戏资源。
// 精灵图像和音频均为程序化生成，首次请求时合成并缓存，之后复用缓存实例。
//
// 线程安全说明：
// 本实现不是线程安全的，内部缓存使用普通 map。
// 当前游戏循环为单线程，无需同步；如需在多个 goroutine 中加载资源，
// 必须在主 goroutine 中预加载，或自行加锁。
//
// 用法：
//
//	audioContext := audio.NewContext(game.SampleRate)
//	rm := NewResourceManager(audioContext)
//	img := rm.GetSprite(game.SpritePlayer)
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // 精灵缓存：资源ID -> 图像
	audioCache   map[string]*audio.Player // 音频播放器缓存：资源ID -> 播放器
	audioContext *audio.Context           // 全局音频上下文，可为 nil（无音频模式）
}

// NewResourceManager 创建并初始化资源管理器
//
// 参数：
//   - audioContext: 全局音频上下文。传 nil 进入无音频模式，
//     此时音频加载方法返回错误，精灵生成不受影响。
//
// 返回：
//   - *ResourceManager: 带空缓存的资源管理器实例
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
	}
}

// GetSprite 返回指定ID的精灵图像，首次请求时生成并缓存
//
// 参数：
//   - spriteID: 精灵资源ID（如 SpritePlayer）
//
// 返回：
//   - *ebiten.Image: 生成的图像，未知ID返回 nil
func (rm *ResourceManager) GetSprite(spriteID string) *ebiten.Image {
	// 无资源模式（无头测试）下管理器可能为 nil
	if rm == nil {
		return nil
	}

	if img, exists := rm.imageCache[spriteID]; exists {
		return img
	}

	spec, exists := spriteSpecs[spriteID]
	if !exists {
		return nil
	}

	img := generateSprite(spec)
	rm.imageCache[spriteID] = img
	return img
}

// generateSprite 按规格生成双色块精灵：主体底色加中心高亮
func generateSprite(spec spriteSpec) *ebiten.Image {
	img := ebiten.NewImage(spec.width, spec.height)
	img.Fill(spec.base)

	// 中心高亮区占整体尺寸的一半
	x0 := spec.width / 4
	y0 := spec.height / 4
	x1 := spec.width - x0
	y1 := spec.height - y0
	if x1 > x0 && y1 > y0 {
		inner := img.SubImage(image.Rect(x0, y0, x1, y1)).(*ebiten.Image)
		inner.Fill(spec.accent)
	}

	return img
}

// LoadSoundEffect 合成指定ID的音效并创建播放器，缓存供复用
// 音效播放器不循环，适合单次触发的射击、爆炸等
//
// 参数：
//   - soundID: 音效资源ID（如 SoundPlayerShoot）
//
// 返回：
//   - *audio.Player: 就绪但未开始播放的播放器
//   - error: 音频上下文缺失或ID未知时返回错误
func (rm *ResourceManager) LoadSoundEffect(soundID string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[soundID]; exists {
		return cachedPlayer, nil
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available (no-audio mode)")
	}

	pcm := SynthesizeSound(soundID)
	if pcm == nil {
		return nil, fmt.Errorf("unknown sound ID: %s", soundID)
	}

	player := rm.audioContext.NewPlayerFromBytes(pcm)
	rm.audioCache[soundID] = player
	return player, nil
}

// LoadMusic 合成指定ID的音乐并创建无限循环播放器，缓存供复用
//
// 参数：
//   - musicID: 音乐资源ID（如 MusicBattle）
//
// 返回：
//   - *audio.Player: 就绪但未开始播放的循环播放器
//   - error: 音频上下文缺失、ID未知或播放器创建失败时返回错误
func (rm *ResourceManager) LoadMusic(musicID string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[musicID]; exists {
		return cachedPlayer, nil
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available (no-audio mode)")
	}

	pcm := SynthesizeSound(musicID)
	if pcm == nil {
		return nil, fmt.Errorf("unknown music ID: %s", musicID)
	}

	// 无缝循环整段 PCM
	loopStream := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))

	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player for %s: %w", musicID, err)
	}

	rm.audioCache[musicID] = player
	return player, nil
}

// GetAudioPlayer 从缓存获取已加载的音频播放器
// 尚未加载时返回 nil，需先调用 LoadSoundEffect 或 LoadMusic
func (rm *ResourceManager) GetAudioPlayer(audioID string) *audio.Player {
	return rm.audioCache[audioID]
}
