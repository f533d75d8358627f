package util

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// StageFile 将上传流落盘为唯一命名的临时文件，保留原始扩展名。
// 返回暂存路径和清理函数，清理函数在任何退出路径上都必须被调用。
// dir 为空时使用系统临时目录。
func StageFile(reader io.Reader, originalName, dir string) (string, func(), error) {
	if dir == "" {
		dir = os.TempDir()
	}

	ext := path.Ext(originalName)
	stagedPath := filepath.Join(dir, uuid.NewString()+ext)

	f, err := os.Create(stagedPath)
	if err != nil {
		return "", nil, fmt.Errorf("创建暂存文件失败: %w", err)
	}

	cleanup := func() {
		_ = os.Remove(stagedPath)
	}

	if _, err = io.Copy(f, reader); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("写入暂存文件失败: %w", err)
	}
	if err = f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("关闭暂存文件失败: %w", err)
	}

	return stagedPath, cleanup, nil
}
