package xfile

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// DefaultFilePerm 原子写入生成文件的默认权限。
const DefaultFilePerm = 0640

// WriteFileAtomic 原子地将 data 写入 filename。
//
// 路径先经 SanitizePath 校验，父目录不存在时自动创建；
// 写入由 renameio 完成：同目录临时文件写入并 fsync 后 rename 覆盖目标，
// 失败时清理临时文件，目标文件保持原状。目标已存在时沿用其权限。
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	path, err := SanitizePath(filename)
	if err != nil {
		return err
	}
	if err := EnsureDir(path); err != nil {
		return err
	}
	if err := renameio.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("xfile: atomic write %s: %w", path, err)
	}
	return nil
}
