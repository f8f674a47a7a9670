package main

import (
	"os"
	"runtime"

	"github.com/annel0/voxel-store/internal/logging"
	"github.com/shirou/gopsutil/v3/process"
)

// logProcessStats выводит использование памяти процессом
func logProcessStats() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	heapMB := float64(m.HeapAlloc) / 1024 / 1024

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		logging.Warn("Не удалось получить процесс: %v", err)
		logging.Info("💾 Heap: %.1f MB", heapMB)
		return
	}

	mem, err := proc.MemoryInfo()
	if err != nil {
		logging.Warn("Не удалось получить память процесса: %v", err)
		logging.Info("💾 Heap: %.1f MB", heapMB)
		return
	}

	logging.Info("💾 Heap: %.1f MB, RSS: %.1f MB", heapMB, float64(mem.RSS)/1024/1024)
}
