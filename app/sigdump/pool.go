package sigdump

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/gopacket"
	"github.com/usnistgov/sigtran-tlv/sigtran/render"
	"github.com/usnistgov/sigtran-tlv/sigtran/sigtranlayer"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Packet is a captured packet.
type Packet struct {
	// Index is the zero-based position in the capture.
	Index       int
	Data        []byte
	CaptureInfo gopacket.CaptureInfo
}

// Result is the dissection result of one packet.
type Result struct {
	Packet
	Records []sigtranlayer.Record
}

// Documents renders every message found in the packet.
// Document.Index is the 1-based packet number.
func (res Result) Documents() (docs []render.Document) {
	for _, rec := range res.Records {
		doc := render.Render(rec.Variant, rec.PDU, rec.Err)
		doc.Index = res.Index + 1
		docs = append(docs, doc)
	}
	return docs
}

// Summary counts dissection results.
type Summary struct {
	Packets  int
	Messages int
	Errors   int

	// Err combines decode errors of all messages.
	Err error
}

func (sum *Summary) add(res Result) {
	sum.Packets++
	for _, rec := range res.Records {
		sum.Messages++
		if rec.Err != nil {
			sum.Errors++
			sum.Err = multierr.Append(sum.Err, fmt.Errorf("packet %d: %w", res.Index, rec.Err))
		}
	}
}

// Dissect reads every packet from src and dissects them in parallel.
// emit is invoked sequentially with results in capture order.
//
// At most s.QueueCapacity packets are in flight between reading and emitting,
// so that a slow packet does not let later results pile up in memory.
// Decode errors of individual messages are reported in Summary.Err and do not stop processing.
// The returned error is non-nil if reading fails, emit fails, or ctx is canceled.
func Dissect(ctx context.Context, src gopacket.PacketDataSource, decoder gopacket.Decoder, s Settings,
	emit func(res Result) error) (sum Summary, e error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan Packet, s.QueueCapacity)
	results := make(chan Result, s.QueueCapacity)
	readErr := make(chan error, 1)
	inflight := make(chan struct{}, s.QueueCapacity)

	go func() {
		defer close(jobs)
		for i := 0; ; i++ {
			data, ci, e := src.ReadPacketData()
			if errors.Is(e, io.EOF) {
				readErr <- nil
				return
			}
			if e != nil {
				readErr <- fmt.Errorf("read packet %d: %w", i, e)
				return
			}
			select {
			case jobs <- Packet{Index: i, Data: data, CaptureInfo: ci}:
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < max(s.Workers, 1); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				pkt := gopacket.NewPacket(p.Data, decoder, gopacket.DecodeOptions{NoCopy: true})
				res := Result{Packet: p, Records: s.Dissector.Dissect(pkt)}
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	pending := map[int]Result{}
	next := 0
	for res := range results {
		pending[res.Index] = res
		for r, ok := pending[next]; ok; r, ok = pending[next] {
			delete(pending, next)
			<-inflight
			next++
			sum.add(r)
			if e == nil {
				if e = emit(r); e != nil {
					cancel()
				}
			}
		}
	}

	logger.Debug("dissect finished",
		zap.Int("packets", sum.Packets),
		zap.Int("messages", sum.Messages),
		zap.Int("errors", sum.Errors),
	)
	if e != nil {
		return sum, e
	}
	if e = <-readErr; e != nil {
		return sum, e
	}
	return sum, ctx.Err()
}
