package cache

import (
	"container/list"
	"time"
)

type LRUOpts struct {
	Size int
}

type entry struct {
	key       string
	val       any
	expiresAt time.Time // zero means no expiry
}

func (e *entry) expired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

type getReq struct {
	key  string
	resp chan getResp
}

type getResp struct {
	val any
	ok  bool
}

type putReq struct {
	key  string
	val  any
	opts []PutOption
}

// LRU is a bounded cache with least-recently-used eviction. A background
// goroutine owns all state; Close stops it.
type LRU struct {
	getCh   chan getReq
	putCh   chan putReq
	delCh   chan string
	clearCh chan struct{}
	lenCh   chan chan int
	closeCh chan struct{}
}

func (L *LRU) Get(key string) (any, bool) {
	resp := make(chan getResp)
	select {
	case L.getCh <- getReq{key: key, resp: resp}:
		r := <-resp
		return r.val, r.ok
	case <-L.closeCh:
		return nil, false
	}
}

func (L *LRU) Put(key string, val any, opts ...PutOption) {
	select {
	case L.putCh <- putReq{key: key, val: val, opts: opts}:
	case <-L.closeCh:
	}
}

func (L *LRU) Delete(key string) {
	select {
	case L.delCh <- key:
	case <-L.closeCh:
	}
}

func (L *LRU) Clear() {
	select {
	case L.clearCh <- struct{}{}:
	case <-L.closeCh:
	}
}

func (L *LRU) Len() int {
	resp := make(chan int)
	select {
	case L.lenCh <- resp:
		return <-resp
	case <-L.closeCh:
		return 0
	}
}

// Close stops the background goroutine. Operations after Close are no-ops.
func (L *LRU) Close() {
	select {
	case <-L.closeCh:
	default:
		close(L.closeCh)
	}
}

func NewLRU(opts LRUOpts) *LRU {
	if opts.Size <= 0 {
		opts.Size = 128
	}

	l := &LRU{
		getCh:   make(chan getReq),
		putCh:   make(chan putReq),
		delCh:   make(chan string),
		clearCh: make(chan struct{}),
		lenCh:   make(chan chan int),
		closeCh: make(chan struct{}),
	}

	go l.run(opts.Size)

	return l
}

func (L *LRU) run(size int) {
	ll := list.New()
	cache := make(map[string]*list.Element)

	for {
		select {
		case req := <-L.getCh:
			ele, ok := cache[req.key]
			if !ok {
				req.resp <- getResp{ok: false}
				continue
			}
			ent := ele.Value.(*entry)
			if ent.expired() {
				ll.Remove(ele)
				delete(cache, req.key)
				req.resp <- getResp{ok: false}
				continue
			}
			ll.MoveToFront(ele)
			req.resp <- getResp{val: ent.val, ok: true}
		case req := <-L.putCh:
			var o PutOptions
			for _, opt := range req.opts {
				opt(&o)
			}
			var expiresAt time.Time
			if o.TTL > 0 {
				expiresAt = time.Now().Add(o.TTL)
			}
			if ele, ok := cache[req.key]; ok {
				ll.MoveToFront(ele)
				ent := ele.Value.(*entry)
				ent.val = req.val
				ent.expiresAt = expiresAt
				continue
			}
			ele := ll.PushFront(&entry{key: req.key, val: req.val, expiresAt: expiresAt})
			cache[req.key] = ele
			if ll.Len() > size {
				last := ll.Back()
				if last != nil {
					ll.Remove(last)
					delete(cache, last.Value.(*entry).key)
				}
			}
		case key := <-L.delCh:
			if ele, ok := cache[key]; ok {
				ll.Remove(ele)
				delete(cache, key)
			}
		case <-L.clearCh:
			ll.Init()
			cache = make(map[string]*list.Element)
		case resp := <-L.lenCh:
			resp <- ll.Len()
		case <-L.closeCh:
			return
		}
	}
}

var _ Cache = (*LRU)(nil)
