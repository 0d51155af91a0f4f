package main

import (
	"github.com/reusee/delegate/debugs"
	"github.com/reusee/delegate/heap"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Heap   heap.Module
	Debugs debugs.Module
}
