package sat

// EVSIDSHeap is a binary heap over per-variable scores (spec §3, "Score
// heap (EVSIDS)"). score_inc grows on every Decay; it and all scores are
// rescaled once it or a bumped score exceeds a fixed threshold, to keep
// float64 well conditioned.
type EVSIDSHeap struct {
	heap    []int32 // variable indices
	pos     []int   // var -> index in heap, -1 if absent
	score   []float64
	inc     float64
	decay   float64
}

const evsidsRescaleThreshold = 1e100

func NewEVSIDSHeap(numVars int32) *EVSIDSHeap {
	h := &EVSIDSHeap{
		pos:   make([]int, numVars+1),
		score: make([]float64, numVars+1),
		inc:   1.0,
		decay: 0.95,
	}
	for v := int32(1); v <= numVars; v++ {
		h.pos[v] = -1
	}
	return h
}

func (h *EVSIDSHeap) Grow(numVars int32) {
	old := int32(len(h.pos)) - 1
	if numVars <= old {
		return
	}
	for v := old + 1; v <= numVars; v++ {
		h.pos = append(h.pos, -1)
		h.score = append(h.score, 0)
	}
}

func (h *EVSIDSHeap) less(a, b int32) bool { return h.score[a] > h.score[b] }

func (h *EVSIDSHeap) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i]] = i
	h.pos[h.heap[j]] = j
}

func (h *EVSIDSHeap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.heap[i], h.heap[parent]) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *EVSIDSHeap) down(i int) {
	n := len(h.heap)
	for {
		l, r, smallest := 2*i+1, 2*i+2, i
		if l < n && h.less(h.heap[l], h.heap[smallest]) {
			smallest = l
		}
		if r < n && h.less(h.heap[r], h.heap[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// Push inserts v into the heap if it is not already present.
func (h *EVSIDSHeap) Push(v int32) {
	if h.pos[v] >= 0 {
		return
	}
	h.heap = append(h.heap, v)
	h.pos[v] = len(h.heap) - 1
	h.up(h.pos[v])
}

// Pop removes and returns the highest-score variable, or 0 if empty.
func (h *EVSIDSHeap) Pop() int32 {
	if len(h.heap) == 0 {
		return 0
	}
	top := h.heap[0]
	last := len(h.heap) - 1
	h.swap(0, last)
	h.heap = h.heap[:last]
	h.pos[top] = -1
	if len(h.heap) > 0 {
		h.down(0)
	}
	return top
}

func (h *EVSIDSHeap) Contains(v int32) bool { return h.pos[v] >= 0 }

// Bump increases v's score by the current increment and rescales the
// whole table if v's score has grown too large.
func (h *EVSIDSHeap) Bump(v int32) {
	h.score[v] += h.inc
	if h.pos[v] >= 0 {
		h.up(h.pos[v])
	}
	if h.score[v] > evsidsRescaleThreshold {
		h.rescale()
	}
}

func (h *EVSIDSHeap) rescale() {
	for v := range h.score {
		h.score[v] *= 1e-100
	}
	h.inc *= 1e-100
}

// Decay grows the increment, making future bumps relatively larger than
// past ones — the usual EVSIDS aging trick.
func (h *EVSIDSHeap) Decay() {
	h.inc /= h.decay
	if h.inc > evsidsRescaleThreshold {
		h.rescale()
	}
}

func (h *EVSIDSHeap) Score(v int32) float64 { return h.score[v] }
