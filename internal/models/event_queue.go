package models

import (
	"container/heap"
	"sync"
	"time"
)

const (
	ActionOpenRestaurant = "OpenRestaurant"
	ActionTap            = "Tap"
	ActionTapHotspot     = "TapHotspot"
	ActionCloseDetail    = "CloseDetail"
	ActionAddExtra       = "AddExtra"
	ActionOpenPanel      = "OpenPanel"
	ActionPanelIncrement = "PanelIncrement"
	ActionPanelDecrement = "PanelDecrement"
	ActionPanelRemove    = "PanelRemove"
	ActionPanelReset     = "PanelReset"
	ActionPanelConfirm   = "PanelConfirm"
	ActionPanelDismiss   = "PanelDismiss"
	ActionAddToCart      = "AddToCart"
	ActionPrevious       = "Previous"
	ActionClose          = "Close"
)

// Event is a viewer action scheduled at a point in time.
type Event struct {
	Time time.Time
	Type string
	Data interface{}

	seq uint64
}

// TapData is the payload of an ActionTap event.
type TapData struct {
	X float64 // percent of the frame width
}

// TargetData carries the id an action applies to (restaurant, hotspot,
// ingredient).
type TargetData struct {
	ID string
}

// EventQueue is a priority queue of events. Events due at the same time
// come out in insertion order.
type EventQueue struct {
	events []*Event
	seq    uint64
	mutex  sync.Mutex
}

// eventHeap implements heap.Interface and holds Events
type eventHeap []*Event

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].Time.Equal(h[j].Time) {
		return h[i].seq < h[j].seq
	}
	return h[i].Time.Before(h[j].Time)
}
func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(*Event))
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// NewEventQueue creates a new EventQueue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]*Event, 0)}
}

// Enqueue adds an event to the queue
func (eq *EventQueue) Enqueue(event *Event) {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	eq.seq++
	event.seq = eq.seq
	heap.Push((*eventHeap)(&eq.events), event)
}

// Dequeue removes and returns the earliest event from the queue
func (eq *EventQueue) Dequeue() *Event {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	if len(eq.events) == 0 {
		return nil
	}
	return heap.Pop((*eventHeap)(&eq.events)).(*Event)
}

// Peek returns the earliest event without removing it
func (eq *EventQueue) Peek() *Event {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	if len(eq.events) == 0 {
		return nil
	}
	return eq.events[0]
}

// IsEmpty returns true if the queue is empty
func (eq *EventQueue) IsEmpty() bool {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	return len(eq.events) == 0
}

// Len returns the number of events in the queue
func (eq *EventQueue) Len() int {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	return len(eq.events)
}

// DequeueDue pops every event due at or before now.
func (eq *EventQueue) DequeueDue(now time.Time) []*Event {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()

	var batch []*Event
	for len(eq.events) > 0 && !eq.events[0].Time.After(now) {
		batch = append(batch, heap.Pop((*eventHeap)(&eq.events)).(*Event))
	}
	return batch
}
