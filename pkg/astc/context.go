package astc

import "sync"

// decodeContext caches the 2048-entry block-mode decode table for one
// footprint, built once per block shape and shared across decodes.
type decodeContext struct {
	blockModes [1 << 11]blockModeInfo
}

var decodeContextMu sync.RWMutex
var decodeContexts = map[[2]int]*decodeContext{}

func getDecodeContext(blockW, blockH int) *decodeContext {
	key := [2]int{blockW, blockH}

	decodeContextMu.RLock()
	ctx, ok := decodeContexts[key]
	decodeContextMu.RUnlock()
	if ok {
		return ctx
	}

	decodeContextMu.Lock()
	defer decodeContextMu.Unlock()
	if ctx, ok := decodeContexts[key]; ok {
		return ctx
	}

	ctx = &decodeContext{}
	for m := 0; m < 1<<11; m++ {
		ctx.blockModes[m] = decodeBlockMode2D(uint(m))
	}
	decodeContexts[key] = ctx
	return ctx
}
