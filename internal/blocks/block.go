// Package blocks implements the typed content block model used by blog
// posts: an ordered sequence of {id, type, data} units that must
// round-trip through JSON without losing order, ids or unknown payloads.
package blocks

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type Type string

const (
	TypeParagraph Type = "paragraph"
	TypeHeading   Type = "heading"
	TypeList      Type = "list"
	TypeCode      Type = "code"
	TypeCallout   Type = "callout"
)

// Data is the payload of a block. The concrete type is determined by the
// block's Type, one variant per kind.
type Data interface {
	blockData()
}

type ParagraphData struct {
	Text string `json:"text"`
}

type HeadingData struct {
	Level int    `json:"level"` // 2 or 3
	Text  string `json:"text"`
}

type ListData struct {
	Items []string `json:"items"`
}

type CodeData struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

type CalloutData struct {
	Text string `json:"text"`
}

// UnknownData preserves the raw payload of block types this client does
// not understand, so newer content survives an edit-save cycle intact.
type UnknownData struct {
	Raw json.RawMessage
}

func (ParagraphData) blockData() {}
func (HeadingData) blockData()   {}
func (ListData) blockData()      {}
func (CodeData) blockData()      {}
func (CalloutData) blockData()   {}
func (UnknownData) blockData()   {}

// Block is one unit of blog content. IDs are unique within a post and
// stable across edits; they are never reassigned on reorder.
type Block struct {
	ID   string
	Type Type
	Data Data
}

// New creates a block of the given type with a fresh id and
// type-appropriate default data.
func New(t Type) Block {
	return Block{
		ID:   uuid.New().String(),
		Type: t,
		Data: DefaultData(t),
	}
}

// DefaultData returns the empty payload an editor starts from for each
// block type.
func DefaultData(t Type) Data {
	switch t {
	case TypeParagraph:
		return ParagraphData{}
	case TypeHeading:
		return HeadingData{Level: 2}
	case TypeList:
		return ListData{Items: []string{""}}
	case TypeCode:
		return CodeData{Language: "javascript"}
	case TypeCallout:
		return CalloutData{}
	default:
		return UnknownData{Raw: json.RawMessage(`{}`)}
	}
}

type blockEnvelope struct {
	ID   string          `json:"id"`
	Type Type            `json:"type"`
	Data json.RawMessage `json:"data"`
}

func (b Block) MarshalJSON() ([]byte, error) {
	var raw json.RawMessage
	switch d := b.Data.(type) {
	case UnknownData:
		raw = d.Raw
	case nil:
		raw = json.RawMessage(`{}`)
	default:
		encoded, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}
		raw = encoded
	}

	return json.Marshal(blockEnvelope{ID: b.ID, Type: b.Type, Data: raw})
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var env blockEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	b.ID = env.ID
	b.Type = env.Type

	if len(env.Data) == 0 {
		env.Data = json.RawMessage(`{}`)
	}

	switch env.Type {
	case TypeParagraph:
		var d ParagraphData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return fmt.Errorf("invalid paragraph data: %w", err)
		}
		b.Data = d
	case TypeHeading:
		var d HeadingData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return fmt.Errorf("invalid heading data: %w", err)
		}
		b.Data = d
	case TypeList:
		var d ListData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return fmt.Errorf("invalid list data: %w", err)
		}
		b.Data = d
	case TypeCode:
		var d CodeData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return fmt.Errorf("invalid code data: %w", err)
		}
		b.Data = d
	case TypeCallout:
		var d CalloutData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return fmt.Errorf("invalid callout data: %w", err)
		}
		b.Data = d
	default:
		b.Data = UnknownData{Raw: append(json.RawMessage(nil), env.Data...)}
	}

	return nil
}
