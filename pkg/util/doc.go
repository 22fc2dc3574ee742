// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 路径校验、父目录创建、原子写文件
package util
