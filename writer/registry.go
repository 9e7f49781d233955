package writer

import "fmt"

// payloadEntry associates a placeholder token with raw payload bytes.
type payloadEntry struct {
	objNum int
	token  string
	data   []byte
}

// payloadRegistry defers binary stream bodies until materialization.
// Payloads are recorded in emission order, which equals the order their
// tokens occur in the composed text; the materializer depends on that.
type payloadRegistry struct {
	entries []payloadEntry
}

func newPayloadRegistry() *payloadRegistry { return &payloadRegistry{} }

// Register stores data and returns its placeholder token. The token embeds
// the object number, so it cannot collide with another token of the pass,
// and its shape cannot occur in well-formed PDF syntax.
func (r *payloadRegistry) Register(objNum int, data []byte) string {
	token := fmt.Sprintf("@@payload:%d@@", objNum)
	r.entries = append(r.entries, payloadEntry{objNum: objNum, token: token, data: data})
	return token
}

// TotalBytes reports the combined payload size of the pass.
func (r *payloadRegistry) TotalBytes() int64 {
	var n int64
	for _, e := range r.entries {
		n += int64(len(e.data))
	}
	return n
}
