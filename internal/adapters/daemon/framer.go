package daemon

import (
	"bufio"
	"context"
	"io"
	"sync"

	"golang.org/x/exp/jsonrpc2"
)

// NewlineFramer frames JSON-RPC messages as newline-delimited JSON. One
// message per line keeps the wire format inspectable with socat during
// debugging.
func NewlineFramer() jsonrpc2.Framer {
	return &newlineFramer{}
}

type newlineFramer struct{}

func (f *newlineFramer) Reader(r io.Reader) jsonrpc2.Reader {
	return &newlineReader{scanner: bufio.NewScanner(r)}
}

func (f *newlineFramer) Writer(w io.Writer) jsonrpc2.Writer {
	return &newlineWriter{w: w}
}

type scanResult struct {
	data []byte
	err  error
}

// newlineReader reads newline-delimited JSON-RPC messages. A persistent
// reader goroutine keeps context cancellation from leaking a goroutine per
// blocked read.
type newlineReader struct {
	scanner  *bufio.Scanner
	resultCh chan scanResult
	once     sync.Once
}

func (r *newlineReader) startReader() {
	r.once.Do(func() {
		r.resultCh = make(chan scanResult)
		go func() {
			defer close(r.resultCh)
			for r.scanner.Scan() {
				// The scanner reuses its buffer.
				data := make([]byte, len(r.scanner.Bytes()))
				copy(data, r.scanner.Bytes())
				r.resultCh <- scanResult{data: data}
			}
			r.resultCh <- scanResult{err: r.scanner.Err()}
		}()
	})
}

func (r *newlineReader) Read(ctx context.Context) (jsonrpc2.Message, int64, error) {
	r.startReader()

	select {
	case <-ctx.Done():
		return nil, 0, ctx.Err()
	case result, ok := <-r.resultCh:
		if !ok {
			return nil, 0, io.EOF
		}
		if result.err != nil {
			return nil, 0, result.err
		}
		if result.data == nil {
			return nil, 0, io.EOF
		}

		msg, err := jsonrpc2.DecodeMessage(result.data)
		if err != nil {
			return nil, 0, err
		}
		return msg, int64(len(result.data)), nil
	}
}

type newlineWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *newlineWriter) Write(ctx context.Context, msg jsonrpc2.Message) (int64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := jsonrpc2.EncodeMessage(msg)
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	n, err := w.w.Write(data)
	return int64(n), err
}
