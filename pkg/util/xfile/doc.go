// Package xfile 提供报告与日志文件落盘所需的路径校验、目录创建和原子写入。
//
// # 路径校验
//
// SanitizePath 规范化文件路径并拒绝明显错误的输入：空路径、包含空字节的路径、
// 以分隔符结尾的目录路径。路径由运维方配置，不做基准目录约束。
//
// # 原子写入
//
// WriteFileAtomic 先写入同目录下的临时文件，fsync 后 rename 覆盖目标文件，
// 读取方要么看到旧内容，要么看到完整的新内容，不会看到半写文件。
package xfile
