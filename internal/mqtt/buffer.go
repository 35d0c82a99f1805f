package mqtt

import "log"

// bufferedMsg stores a serialized MQTT message for replay after reconnection.
type bufferedMsg struct {
	topic    string
	payload  []byte
	qos      byte
	retained bool
}

// ringBuffer is a fixed-capacity FIFO holding messages while the broker is
// unreachable. Not safe for concurrent use; the caller must synchronize.
type ringBuffer struct {
	buf      []bufferedMsg
	capacity int
	oldest   int // index of the oldest buffered message
	count    int
	dropped  int // messages dropped since the last drain
}

func newRingBuffer(capacity int) *ringBuffer {
	return &ringBuffer{
		buf:      make([]bufferedMsg, capacity),
		capacity: capacity,
	}
}

// push appends a message, overwriting the oldest one when full.
func (r *ringBuffer) push(msg bufferedMsg) {
	if r.count == r.capacity {
		if r.dropped == 0 {
			log.Printf("mqtt: buffer full (%d messages), dropping oldest", r.capacity)
		}
		r.dropped++
		r.buf[r.oldest] = msg
		r.oldest = (r.oldest + 1) % r.capacity
		return
	}

	r.buf[(r.oldest+r.count)%r.capacity] = msg
	r.count++
}

// drainAll returns the buffered messages in FIFO order and empties the buffer.
func (r *ringBuffer) drainAll() []bufferedMsg {
	if r.count == 0 {
		return nil
	}

	result := make([]bufferedMsg, r.count)
	for i := range result {
		result[i] = r.buf[(r.oldest+i)%r.capacity]
	}

	r.oldest = 0
	r.count = 0
	r.dropped = 0
	return result
}

func (r *ringBuffer) len() int {
	return r.count
}
