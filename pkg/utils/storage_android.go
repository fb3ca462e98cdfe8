//go:build android

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// preferencesDir gdata 在应用私有目录下使用的子目录
const preferencesDir = "settings"

// EnsureStorageDir 在打开 gdata 之前创建偏好设置目录并确认可写
// gdata 在 Android 上使用 /data/data/{package}/，但不会创建子目录
func EnsureStorageDir() error {
	root := GetStoragePath()
	if root == "" {
		return errors.New("cannot resolve Android package name from /proc/self/cmdline")
	}

	dir := filepath.Join(root, preferencesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return fmt.Errorf("preferences directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath 返回应用私有目录，无法识别包名时返回空字符串
func GetStoragePath() string {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	// cmdline 以 NUL 分隔，第一个字段即包名
	name, _, _ := bytes.Cut(cmdline, []byte{0})
	name = bytes.TrimSpace(name)
	if len(name) == 0 {
		return ""
	}
	return filepath.Join("/data/data", string(name))
}
