package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

// resetForTest 重置包状态，避免测试之间相互影响
func resetForTest() {
	dataFS = nil
	initialized = false
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetForTest()
	defer resetForTest()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	InitFS(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestOpenNotInitialized 测试未初始化时调用 Open
func TestOpenNotInitialized(t *testing.T) {
	resetForTest()

	_, err := Open("data/app.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

// TestReadFile 测试读取存在与不存在的文件
func TestReadFile(t *testing.T) {
	resetForTest()
	defer resetForTest()

	InitFS(fstest.MapFS{
		"data/app.yaml":        {Data: []byte("title: test\n")},
		"data/content/tr.yaml": {Data: []byte("hero: {}\n")},
	})

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"普通路径", "data/app.yaml", "title: test\n", false},
		{"带 ./ 前缀", "./data/app.yaml", "title: test\n", false},
		{"子目录", "data/content/tr.yaml", "hero: {}\n", false},
		{"不存在的文件", "data/missing.yaml", "", true},
		{"未知前缀", "assets/logo.png", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}

// TestExistsAndGlob 测试 Exists 与 Glob
func TestExistsAndGlob(t *testing.T) {
	resetForTest()
	defer resetForTest()

	InitFS(fstest.MapFS{
		"data/content/tr.yaml": {Data: []byte("a")},
		"data/content/en.yaml": {Data: []byte("b")},
	})

	if !Exists("data/content/tr.yaml") {
		t.Error("Expected tr.yaml to exist")
	}
	if Exists("data/content/de.yaml") {
		t.Error("Expected de.yaml not to exist")
	}

	matches, err := Glob("data/content/*.yaml")
	if err != nil {
		t.Fatalf("Glob error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Expected 2 matches, got %d (%v)", len(matches), matches)
	}
}
