package blocks

import (
	"encoding/json"
	"testing"
)

func TestNewBlockDefaults(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want Data
	}{
		{
			name: "paragraph starts empty",
			typ:  TypeParagraph,
			want: ParagraphData{},
		},
		{
			name: "heading defaults to level 2",
			typ:  TypeHeading,
			want: HeadingData{Level: 2},
		},
		{
			name: "code defaults to javascript",
			typ:  TypeCode,
			want: CodeData{Language: "javascript"},
		},
		{
			name: "callout starts empty",
			typ:  TypeCallout,
			want: CalloutData{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.typ)

			if b.ID == "" {
				t.Error("New() produced a block without an id")
			}
			if b.Type != tt.typ {
				t.Errorf("New() type = %q, want %q", b.Type, tt.typ)
			}
			if b.Data != tt.want {
				t.Errorf("New() data = %#v, want %#v", b.Data, tt.want)
			}
		})
	}
}

func TestNewListBlockDefault(t *testing.T) {
	b := New(TypeList)

	data, ok := b.Data.(ListData)
	if !ok {
		t.Fatalf("New(list) data = %T, want ListData", b.Data)
	}
	if len(data.Items) != 1 || data.Items[0] != "" {
		t.Errorf("New(list) items = %v, want one empty item", data.Items)
	}
}

func TestBlockJSONRoundTrip(t *testing.T) {
	input := `[` +
		`{"id":"b1","type":"paragraph","data":{"text":"hello"}},` +
		`{"id":"b2","type":"heading","data":{"level":3,"text":"section"}},` +
		`{"id":"b3","type":"list","data":{"items":["one","two"]}},` +
		`{"id":"b4","type":"code","data":{"code":"x := 1","language":"go"}},` +
		`{"id":"b5","type":"callout","data":{"text":"note"}}` +
		`]`

	var bs []Block
	if err := json.Unmarshal([]byte(input), &bs); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(bs) != 5 {
		t.Fatalf("Unmarshal() produced %d blocks, want 5", len(bs))
	}

	wantIDs := []string{"b1", "b2", "b3", "b4", "b5"}
	for i, id := range wantIDs {
		if bs[i].ID != id {
			t.Errorf("block %d id = %q, want %q", i, bs[i].ID, id)
		}
	}

	if d, ok := bs[1].Data.(HeadingData); !ok || d.Level != 3 || d.Text != "section" {
		t.Errorf("heading data = %#v, want level 3 text %q", bs[1].Data, "section")
	}

	out, err := json.Marshal(bs)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var first, second []map[string]interface{}
	if err := json.Unmarshal([]byte(input), &first); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(out, &second); err != nil {
		t.Fatal(err)
	}

	firstRaw, _ := json.Marshal(first)
	secondRaw, _ := json.Marshal(second)
	if string(firstRaw) != string(secondRaw) {
		t.Errorf("round trip changed content:\n in: %s\nout: %s", firstRaw, secondRaw)
	}
}

func TestBlockUnknownTypePreserved(t *testing.T) {
	input := `{"id":"bx","type":"embed","data":{"url":"https://example.com","width":640}}`

	var b Block
	if err := json.Unmarshal([]byte(input), &b); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if _, ok := b.Data.(UnknownData); !ok {
		t.Fatalf("unknown type data = %T, want UnknownData", b.Data)
	}

	out, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got, want map[string]interface{}
	json.Unmarshal(out, &got)
	json.Unmarshal([]byte(input), &want)

	gotRaw, _ := json.Marshal(got)
	wantRaw, _ := json.Marshal(want)
	if string(gotRaw) != string(wantRaw) {
		t.Errorf("unknown block not preserved:\n in: %s\nout: %s", wantRaw, gotRaw)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		blocks  []Block
		wantErr bool
	}{
		{
			name: "valid sequence",
			blocks: []Block{
				{ID: "a", Type: TypeParagraph, Data: ParagraphData{Text: "x"}},
				{ID: "b", Type: TypeHeading, Data: HeadingData{Level: 2, Text: "y"}},
			},
			wantErr: false,
		},
		{
			name: "duplicate id",
			blocks: []Block{
				{ID: "a", Type: TypeParagraph, Data: ParagraphData{}},
				{ID: "a", Type: TypeCallout, Data: CalloutData{}},
			},
			wantErr: true,
		},
		{
			name: "missing id",
			blocks: []Block{
				{ID: "", Type: TypeParagraph, Data: ParagraphData{}},
			},
			wantErr: true,
		},
		{
			name: "bad heading level",
			blocks: []Block{
				{ID: "a", Type: TypeHeading, Data: HeadingData{Level: 5}},
			},
			wantErr: true,
		},
		{
			name: "empty list",
			blocks: []Block{
				{ID: "a", Type: TypeList, Data: ListData{}},
			},
			wantErr: true,
		},
		{
			name:    "empty sequence",
			blocks:  nil,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.blocks)
			if tt.wantErr && err == nil {
				t.Error("Validate() expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}
