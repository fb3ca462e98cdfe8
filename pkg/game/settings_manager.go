package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ReportSettings 用户偏好
// 只保存界面偏好，不保存任何报告内容或小游戏进度
type ReportSettings struct {
	// Language 上次选择的语言（TR / EN），空字符串表示未选择过
	Language   string `yaml:"language"`
	Muted      bool   `yaml:"muted"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *ReportSettings {
	return &ReportSettings{}
}

// gdata 中的存储位置
const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// SettingsManager 用户偏好的加载与保存
//
// store 为 nil 时处于降级模式：设置只保存在内存中，Save 与 Load 都不报错。
type SettingsManager struct {
	store    *gdata.Manager
	settings *ReportSettings
}

// NewSettingsManager 创建设置管理器并立即加载
// 加载失败只记录日志，继续使用默认设置
func NewSettingsManager(store *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{store: store, settings: DefaultSettings()}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 重新读取设置；任何失败都会先把内存中的设置重置为默认值
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	loaded, err := sm.read()
	if err != nil {
		return err
	}
	if _, err := ParseLanguage(loaded.Language); err != nil {
		loaded.Language = ""
	}
	sm.settings = loaded
	log.Printf("[SettingsManager] Loaded %+v", *loaded)
	return nil
}

func (sm *SettingsManager) read() (*ReportSettings, error) {
	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return loaded, nil
}

// Save 写入当前设置，降级模式下什么也不做
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// saveQuietly 保存设置，失败只记录日志
func (sm *SettingsManager) saveQuietly() {
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
}

// GetSettings 当前设置（可直接读取字段，修改请用 Set* 方法）
func (sm *SettingsManager) GetSettings() *ReportSettings {
	return sm.settings
}

// SavedLanguage 上次保存的有效语言
func (sm *SettingsManager) SavedLanguage() (Language, bool) {
	lang, err := ParseLanguage(sm.settings.Language)
	return lang, err == nil
}

// 以下 Set* 方法只修改内存，持久化需调用 Save

func (sm *SettingsManager) SetLanguage(lang Language) { sm.settings.Language = string(lang) }

func (sm *SettingsManager) SetMuted(muted bool) { sm.settings.Muted = muted }

func (sm *SettingsManager) SetFullscreen(enabled bool) { sm.settings.Fullscreen = enabled }
