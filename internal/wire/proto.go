package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Request is a wire query request: a gRPC route plus its protobuf body.
type Request interface {
	Route() string
	Marshal() ([]byte, error)
}

// encoder appends proto3 fields, skipping scalar defaults the way generated code does.
type encoder struct {
	buf []byte
	err error
}

func (e *encoder) string(num protowire.Number, v string) {
	if v == "" {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendString(e.buf, v)
}

// repeatedString writes every element, empty strings included.
func (e *encoder) repeatedString(num protowire.Number, vs []string) {
	for _, v := range vs {
		e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
		e.buf = protowire.AppendString(e.buf, v)
	}
}

func (e *encoder) bytes(num protowire.Number, v []byte) {
	if len(v) == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, v)
}

func (e *encoder) uint64(num protowire.Number, v uint64) {
	if v == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, v)
}

func (e *encoder) int64(num protowire.Number, v int64) {
	e.uint64(num, uint64(v))
}

// enum sign-extends negative values to ten bytes, as proto3 int32 fields do.
func (e *encoder) enum(num protowire.Number, v int32) {
	e.uint64(num, uint64(int64(v)))
}

func (e *encoder) bool(num protowire.Number, v bool) {
	if !v {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, protowire.EncodeBool(v))
}

// message writes an embedded message, even when its encoding is empty.
func (e *encoder) message(num protowire.Number, body []byte, err error) {
	if e.err != nil {
		return
	}
	if err != nil {
		e.err = err
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, body)
}

func (e *encoder) timestamp(num protowire.Number, ts *timestamppb.Timestamp) {
	if ts == nil {
		return
	}
	body, err := proto.MarshalOptions{Deterministic: true}.Marshal(ts)
	e.message(num, body, err)
}

func (e *encoder) finish() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.buf == nil {
		return []byte{}, nil
	}
	return e.buf, nil
}
