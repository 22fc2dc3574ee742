package xfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SanitizePath 规范化文件路径。
//
// 拒绝空路径、包含空字节的路径，以及以 "/" 或 "\" 结尾的目录路径。
// 返回 filepath.Clean 之后的路径。
func SanitizePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename is required: %w", ErrEmptyPath)
	}
	if containsNullByte(filename) {
		return "", fmt.Errorf("filename contains null byte: %w", ErrNullByte)
	}

	// 必须在 Clean 之前检查，Clean 会移除尾部分隔符
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, "\\") {
		return "", fmt.Errorf("path is a directory: %w", ErrInvalidPath)
	}

	cleaned := filepath.Clean(filename)
	base := filepath.Base(cleaned)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("no file name specified: %w", ErrInvalidPath)
	}
	return cleaned, nil
}

func containsNullByte(path string) bool {
	return strings.ContainsRune(path, 0)
}
