package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Envelope is the pair of tags around a packed object.
type Envelope struct {
	// Open precedes the JSON document.
	Open string
	// Close follows the JSON document.
	Close string
}

// DefaultEnvelope is used when an Envelope has empty tags.
//
//nolint:gochecknoglobals // Immutable value used as a constant.
var DefaultEnvelope = Envelope{Open: "<KK-ENV>", Close: "</KK-ENV>"}

// Static error definitions for better error handling.
var (
	// ErrEnvelopeNotFound indicates that the text holds no complete envelope.
	ErrEnvelopeNotFound = errors.New("envelope not found")
)

// packet is the JSON document inside an envelope.
type packet struct {
	Payload json.RawMessage `json:"payload"`
	Topic   string          `json:"topic"`
}

func (e Envelope) orDefault() Envelope {
	if e.Open == "" || e.Close == "" {
		return DefaultEnvelope
	}

	return e
}

// Pack serializes obj as JSON and wraps it with its topic in env.
// An empty topic defaults to the name of obj's type.
func Pack(obj any, topic string, env Envelope) (string, error) {
	env = env.orDefault()

	if topic == "" {
		topic = typeName(obj)
	}

	payload, err := json.Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	doc, err := json.Marshal(packet{Payload: payload, Topic: topic})
	if err != nil {
		return "", fmt.Errorf("failed to marshal envelope: %w", err)
	}

	return env.Open + string(doc) + env.Close, nil
}

// Unpack finds the first envelope in text, decodes its payload into out and returns its topic.
// Text around the envelope is ignored.
func Unpack(text string, env Envelope, out any) (string, error) {
	env = env.orDefault()

	start := strings.Index(text, env.Open)
	if start < 0 {
		return "", ErrEnvelopeNotFound
	}

	start += len(env.Open)

	end := strings.Index(text[start:], env.Close)
	if end < 0 {
		return "", ErrEnvelopeNotFound
	}

	var p packet
	if err := json.Unmarshal([]byte(text[start:start+end]), &p); err != nil {
		return "", fmt.Errorf("failed to unmarshal envelope: %w", err)
	}

	if out != nil && len(p.Payload) > 0 {
		if err := json.Unmarshal(p.Payload, out); err != nil {
			return "", fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	return p.Topic, nil
}

func typeName(obj any) string {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil {
		return "nil"
	}

	if name := t.Name(); name != "" {
		return name
	}

	return t.String()
}
