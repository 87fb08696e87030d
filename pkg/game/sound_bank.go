package game

import (
	"encoding/binary"
	"math"
	"math/rand"
)

// 本游戏不携带任何音频资源文件，所有音效和背景音乐都在启动时程序化合成。
// 合成输出为 16bit 小端双声道交错 PCM，采样率必须与 app 创建的
// audio.NewContext(SampleRate) 保持一致。

// SampleRate 音频采样率（Hz）
const SampleRate = 48000

// 音频资源ID
// AudioManager 和场景通过这些ID播放音频，无需关心合成细节
const (
	SoundPlayerShoot = "SOUND_PLAYER_SHOOT" // 玩家开火
	SoundEnemyShoot  = "SOUND_ENEMY_SHOOT"  // 敌机开火
	SoundPlayerHit   = "SOUND_PLAYER_HIT"   // 玩家受击
	SoundExplosion   = "SOUND_EXPLOSION"    // 敌机爆炸
	SoundGameOver    = "SOUND_GAMEOVER"     // 游戏结束
	MusicBattle      = "MUSIC_BATTLE"       // 战斗背景音乐（循环）
)

// 波形类型
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer 单声道 float64 采样序列，满幅为 ±1.0
type floatBuffer []float64

// durationToSamples 将秒数转换为采样点数
func durationToSamples(seconds float64) int {
	return int(seconds * SampleRate)
}

// oscillator 生成固定频率的原始波形
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / SampleRate

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// sweepOscillator 生成频率从 startFreq 线性滑到 endFreq 的波形
// 用于射击音效的下滑音调
func sweepOscillator(waveType int, startFreq, endFreq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		freq := startFreq + (endFreq-startFreq)*t

		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += freq / SampleRate
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope 原地施加 attack/release 包络，消除爆音
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * SampleRate)
	releaseSamples := int(releaseSec * SampleRate)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixBuffers 将 b 按 scale 混入 a（原地），b 较长时扩展 a
func mixBuffers(a, b floatBuffer, scale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * scale
	}
	return a
}

// concatBuffers 将 b 拼接到 a 之后
func concatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// scaleBuffer 原地整体缩放音量
func scaleBuffer(buf floatBuffer, gain float64) {
	for i := range buf {
		buf[i] *= gain
	}
}

// --- 各音效的合成 ---

// synthPlayerShoot 玩家开火：短促的下滑方波
func synthPlayerShoot() floatBuffer {
	samples := durationToSamples(0.08)
	buf := sweepOscillator(waveSquare, 880.0, 440.0, samples)
	applyEnvelope(buf, 0.005, 0.05)
	scaleBuffer(buf, 0.35)
	return buf
}

// synthEnemyShoot 敌机开火：更低沉的下滑方波，与玩家射击区分
func synthEnemyShoot() floatBuffer {
	samples := durationToSamples(0.08)
	buf := sweepOscillator(waveSquare, 330.0, 220.0, samples)
	applyEnvelope(buf, 0.005, 0.05)
	scaleBuffer(buf, 0.3)
	return buf
}

// synthPlayerHit 玩家受击：噪声冲击混入低频正弦
func synthPlayerHit() floatBuffer {
	samples := durationToSamples(0.25)

	noise := oscillator(waveNoise, 0, samples)
	applyEnvelope(noise, 0.002, 0.2)

	thump := oscillator(waveSine, 110.0, samples)
	applyEnvelope(thump, 0.002, 0.22)

	buf := mixBuffers(noise, thump, 1.2)
	scaleBuffer(buf, 0.45)
	return buf
}

// synthExplosion 敌机爆炸：长尾噪声加超低频轰鸣
func synthExplosion() floatBuffer {
	samples := durationToSamples(0.4)

	noise := oscillator(waveNoise, 0, samples)
	applyEnvelope(noise, 0.002, 0.35)

	rumble := oscillator(waveSine, 60.0, samples)
	applyEnvelope(rumble, 0.002, 0.38)

	buf := mixBuffers(noise, rumble, 1.5)
	scaleBuffer(buf, 0.4)
	return buf
}

// synthGameOver 游戏结束：三个下行音符
func synthGameOver() floatBuffer {
	noteLen := durationToSamples(0.3)
	freqs := []float64{440.0, 349.23, 261.63} // A4 -> F4 -> C4

	var buf floatBuffer
	for _, freq := range freqs {
		note := oscillator(waveSine, freq, noteLen)
		applyEnvelope(note, 0.01, 0.12)
		buf = concatBuffers(buf, note)
	}
	scaleBuffer(buf, 0.4)
	return buf
}

// synthBattleMusic 战斗背景音乐：八音符低音循环，每音符叠加五度泛音
// 播放端用 audio.NewInfiniteLoop 包装后无缝循环
func synthBattleMusic() floatBuffer {
	noteLen := durationToSamples(0.25)
	// A 小调低音走向
	bassline := []float64{110.0, 110.0, 130.81, 110.0, 98.0, 98.0, 87.31, 98.0}

	var buf floatBuffer
	for _, freq := range bassline {
		root := oscillator(waveSine, freq, noteLen)
		applyEnvelope(root, 0.01, 0.08)

		fifth := oscillator(waveSine, freq*1.5, noteLen)
		applyEnvelope(fifth, 0.01, 0.08)

		note := mixBuffers(root, fifth, 0.3)
		buf = concatBuffers(buf, note)
	}
	scaleBuffer(buf, 0.25)
	return buf
}

// synthBuffer 按资源ID合成单声道采样，未知ID返回 nil
func synthBuffer(id string) floatBuffer {
	switch id {
	case SoundPlayerShoot:
		return synthPlayerShoot()
	case SoundEnemyShoot:
		return synthEnemyShoot()
	case SoundPlayerHit:
		return synthPlayerHit()
	case SoundExplosion:
		return synthExplosion()
	case SoundGameOver:
		return synthGameOver()
	case MusicBattle:
		return synthBattleMusic()
	default:
		return nil
	}
}

// floatToPCM 将单声道 float64 采样转换为双声道 16bit 小端交错 PCM
// 每个采样点输出 4 字节（左右声道各 2 字节）
func floatToPCM(buf floatBuffer) []byte {
	out := make([]byte, len(buf)*4)
	for i, v := range buf {
		// 硬限幅，防止混音后溢出
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}

		s := int16(v * 32767)
		idx := i * 4
		binary.LittleEndian.PutUint16(out[idx:], uint16(s))   // 左声道
		binary.LittleEndian.PutUint16(out[idx+2:], uint16(s)) // 右声道
	}
	return out
}

// SynthesizeSound 合成指定ID的音频数据
//
// 返回：
//   - []byte: 双声道 16bit 小端 PCM 数据，可直接交给 audio.Context 播放
//   - 未知ID返回 nil
func SynthesizeSound(id string) []byte {
	buf := synthBuffer(id)
	if buf == nil {
		return nil
	}
	return floatToPCM(buf)
}
