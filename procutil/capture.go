package procutil

import "bytes"

// cappedBuffer keeps the first limit bytes written to it and counts the rest.
// A limit of zero or less keeps everything.
type cappedBuffer struct {
	buf     bytes.Buffer
	limit   int64
	dropped int64
}

// Write implements io.Writer. It never fails, so the child process is never blocked by a full buffer.
func (b *cappedBuffer) Write(p []byte) (int, error) {
	if b.limit <= 0 {
		return b.buf.Write(p)
	}

	room := b.limit - int64(b.buf.Len())
	if room <= 0 {
		b.dropped += int64(len(p))

		return len(p), nil
	}

	if int64(len(p)) > room {
		b.buf.Write(p[:room])
		b.dropped += int64(len(p)) - room

		return len(p), nil
	}

	return b.buf.Write(p)
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}

func (b *cappedBuffer) truncated() bool {
	return b.dropped > 0
}
