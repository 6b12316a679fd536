package document

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// DefaultContextFallbacks are tried in order when the requested context
// document does not exist. contexts.json is checked twice.
var DefaultContextFallbacks = []string{"contexts.json", "context.json", "contexts.json"}

// Loader reads conversation and context documents from disk.
type Loader struct {
	dir    string
	logger *zap.Logger
}

type Option func(*Loader)

// WithDir resolves relative paths against dir instead of the working directory.
func WithDir(dir string) Option {
	return func(l *Loader) {
		l.dir = dir
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

func New(opts ...Option) *Loader {
	l := &Loader{
		logger: zap.NewNop(),
	}

	for _, o := range opts {
		o(l)
	}

	return l
}

func (l *Loader) resolve(path string) string {
	if l.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.dir, path)
}

// Exists reports whether path names an existing file or directory.
func (l *Loader) Exists(path string) bool {
	_, err := os.Stat(l.resolve(path))
	return err == nil
}

// ReadFile returns the full contents of path.
func (l *Loader) ReadFile(path string) ([]byte, error) {
	f, err := os.Open(l.resolve(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// ResolveContextPath returns path if it exists, otherwise the first existing
// entry of fallbacks. Duplicate fallbacks are checked again.
func (l *Loader) ResolveContextPath(path string, fallbacks []string) (string, error) {
	if l.Exists(path) {
		return path, nil
	}

	for _, candidate := range fallbacks {
		l.logger.Debug("checking context fallback", zap.String("candidate", candidate))
		if l.Exists(candidate) {
			l.logger.Warn("context document not found, using fallback",
				zap.String("path", path),
				zap.String("fallback", candidate),
			)
			return candidate, nil
		}
	}

	tried := make([]string, len(fallbacks))
	copy(tried, fallbacks)
	return "", &NotFoundError{Path: path, Tried: tried}
}

func (l *Loader) parse(path string) (gjson.Result, error) {
	data, err := l.ReadFile(path)
	if err != nil {
		return gjson.Result{}, err
	}

	if !utf8.Valid(data) {
		return gjson.Result{}, &ParseError{Path: path, Err: errors.New("invalid UTF-8")}
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, &ParseError{Path: path}
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return gjson.Result{}, &ParseError{Path: path, Err: errors.New("top-level value must be an object")}
	}
	return root, nil
}

// lastField returns the final occurrence of key in obj, so duplicated keys
// resolve last-wins like encoding/json.
func lastField(obj gjson.Result, key string) gjson.Result {
	var found gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
		}
		return true
	})
	return found
}

// LoadConversation reads a conversation document. The last message must carry
// a string content and assistant_response must be a string.
func (l *Loader) LoadConversation(path string) (*Conversation, error) {
	root, err := l.parse(path)
	if err != nil {
		return nil, err
	}

	messages := lastField(root, "messages")
	if !messages.IsArray() {
		return nil, &MissingFieldError{Path: path, Field: "messages"}
	}

	items := messages.Array()
	if len(items) == 0 {
		return nil, &MissingFieldError{Path: path, Field: "messages"}
	}
	if lastField(items[len(items)-1], "content").Type != gjson.String {
		return nil, &MissingFieldError{Path: path, Field: "messages[-1].content"}
	}

	response := lastField(root, "assistant_response")
	if response.Type != gjson.String {
		return nil, &MissingFieldError{Path: path, Field: "assistant_response"}
	}

	conv := &Conversation{
		Messages:          make([]Message, 0, len(items)),
		AssistantResponse: response.String(),
	}
	for _, m := range items {
		conv.Messages = append(conv.Messages, Message{
			Role:    lastField(m, "role").String(),
			Content: lastField(m, "content").String(),
		})
	}

	l.logger.Debug("loaded conversation",
		zap.String("path", path),
		zap.Int("messages", len(conv.Messages)),
	)

	return conv, nil
}

// LoadContext reads a context document. A missing or null vectors field
// yields an empty document.
func (l *Loader) LoadContext(path string) (*ContextDocument, error) {
	root, err := l.parse(path)
	if err != nil {
		return nil, err
	}

	doc := &ContextDocument{Vectors: []string{}}

	vectors := lastField(root, "vectors")
	if !vectors.Exists() || vectors.Type == gjson.Null {
		return doc, nil
	}
	if !vectors.IsArray() {
		return nil, &MissingFieldError{Path: path, Field: "vectors"}
	}

	for i, v := range vectors.Array() {
		if v.Type != gjson.String {
			return nil, &MissingFieldError{Path: path, Field: fmt.Sprintf("vectors[%d]", i)}
		}
		doc.Vectors = append(doc.Vectors, v.String())
	}

	l.logger.Debug("loaded context",
		zap.String("path", path),
		zap.Int("vectors", len(doc.Vectors)),
	)

	return doc, nil
}

// LoadContextWithFallback resolves path against fallbacks and loads the
// resulting document. It also returns the path that was loaded.
func (l *Loader) LoadContextWithFallback(path string, fallbacks []string) (*ContextDocument, string, error) {
	resolved, err := l.ResolveContextPath(path, fallbacks)
	if err != nil {
		return nil, "", err
	}

	doc, err := l.LoadContext(resolved)
	if err != nil {
		return nil, "", err
	}
	return doc, resolved, nil
}
