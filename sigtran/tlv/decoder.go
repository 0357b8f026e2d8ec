package tlv

import (
	"errors"

	"github.com/pkg/math"
)

// Limits and defaults.
const (
	DefaultMaxDepth = 16
	MaxMaxDepth     = 64
)

// Options contains decoder options.
type Options struct {
	// MaxDepth limits nesting of parameter lists.
	// Zero means DefaultMaxDepth. The value is clamped to [1, MaxMaxDepth].
	MaxDepth int

	// OnPayload, if not nil, receives every embedded payload, in wire order.
	// It is invoked synchronously and must not retain the Payload slice beyond the input buffer lifetime.
	OnPayload func(Embedded)
}

func (opts *Options) applyDefaults() {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	opts.MaxDepth = math.MinInt(math.MaxInt(opts.MaxDepth, 1), MaxMaxDepth)
}

// Decoder decodes TLV parameters according to a Table.
// A Decoder holds no state across calls other than its configuration; it is cheap to create per message.
type Decoder struct {
	table *Table
	opts  Options
	depth int
}

// NewDecoder creates a Decoder.
func NewDecoder(table *Table, opts Options) *Decoder {
	opts.applyDefaults()
	return &Decoder{
		table: table,
		opts:  opts,
	}
}

// Table returns the table used at the current nesting level.
func (d *Decoder) Table() *Table {
	return d.table
}

// Depth returns the current nesting level; the top-level parameter list is level 0.
func (d *Decoder) Depth() int {
	return d.depth
}

// MaxDepth returns the effective nesting limit.
func (d *Decoder) MaxDepth() int {
	return d.opts.MaxDepth
}

// DecodeOne decodes one parameter at the cursor position.
// consumed counts header, value and padding octets.
//
// Framing failures return a *ParameterError: a header cut short (ErrTruncated, consumed is 0),
// an invalid length (ErrLength), a value running past the buffer (ErrTruncatedParameter),
// or such a failure inside a nested list, as well as ErrDepth.
// If the header was read, p carries the tag and whatever part of the value is available.
//
// A well-framed value that its strategy cannot decode is not an error of the list:
// p.Malformed records the problem, and p.Value holds the partially decoded value or the raw octets as Opaque.
// An empty value is always valid.
func (d *Decoder) DecodeOne(c *Cursor) (p Parameter, consumed int, e error) {
	framing := d.table.framing
	hdrLen := framing.HeaderLen()
	start := c.Remaining()
	p.Offset = c.Offset()

	if start < hdrLen {
		return p, 0, &ParameterError{Offset: p.Offset, Available: start, Err: ErrTruncated}
	}
	tag, _ := c.ReadUint(framing.TagWidth)
	wireLen, _ := c.ReadUint(framing.LengthWidth)

	entry := d.table.Resolve(uint32(tag))
	p.Tag, p.Name = entry.Tag, entry.Name
	wrap := func(err error) *ParameterError {
		var pe *ParameterError
		if !errors.As(err, &pe) {
			pe = &ParameterError{Tag: p.Tag, Name: p.Name, Offset: p.Offset, Length: p.Length, Available: c.Remaining(), Err: err}
		}
		return pe
	}
	fail := func(err error) (Parameter, int, error) {
		return p, start - c.Remaining(), wrap(err)
	}

	if framing.LengthIncludesHeader {
		if wireLen < uint64(hdrLen) {
			return fail(ErrLength)
		}
		wireLen -= uint64(hdrLen)
	}
	if wireLen > uint64(c.Remaining()) {
		p.Length = int(wireLen)
		p.Value = Opaque(c.Peek())
		return fail(ErrTruncatedParameter)
	}
	p.Length = int(wireLen)
	p.Padding = Padding(hdrLen, p.Length)

	value, _ := c.Sub(p.Length)
	raw := value.Peek()
	if entry.Strategy == nil {
		p.Value = Opaque(raw)
		return fail(ErrUnsupportedVariant)
	}
	p.Value, e = entry.Strategy.Decode(d, &value)
	if !value.EOF() {
		p.Extra = value.Rest()
	}
	c.Skip(math.MinInt(p.Padding, c.Remaining()))

	switch {
	case e == nil:
	case p.Length == 0:
		p.Value, p.Extra = Opaque(raw), nil
	case isFraming(e):
		return fail(e)
	default:
		p.Malformed = wrap(e)
		if p.Value == nil {
			p.Value, p.Extra = Opaque(raw), nil
		}
	}
	return p, start - c.Remaining(), nil
}

// isFraming determines whether a strategy error comes from parameter framing, which ends the parameter list.
func isFraming(e error) bool {
	var pe *ParameterError
	return errors.As(e, &pe) || errors.Is(e, ErrDepth)
}

// DecodeList decodes parameters until the cursor is exhausted.
// A parameter whose value is malformed does not stop the list.
// On error, it returns the parameters decoded so far, including the failing parameter if its header was read.
func (d *Decoder) DecodeList(c *Cursor) (list []Parameter, e error) {
	for !c.EOF() {
		p, consumed, e := d.DecodeOne(c)
		if consumed > 0 {
			list = append(list, p)
		}
		if e != nil {
			return list, e
		}
	}
	return list, nil
}

// DecodeNested decodes a nested parameter list one level deeper.
// If table is nil, the current table is used.
func (d *Decoder) DecodeNested(c *Cursor, table *Table) ([]Parameter, error) {
	if d.depth >= d.opts.MaxDepth {
		return nil, ErrDepth
	}
	child := *d
	child.depth++
	if table != nil {
		child.table = table
	}
	return child.DecodeList(c)
}

// Embed consumes the rest of the cursor as an embedded payload and hands it to Options.OnPayload.
func (d *Decoder) Embed(c *Cursor, hint string) Embedded {
	em := Embedded{Offset: c.Offset(), Hint: hint}
	em.Payload = c.Rest()
	em.Length = len(em.Payload)
	if d.opts.OnPayload != nil {
		d.opts.OnPayload(em)
	}
	return em
}
