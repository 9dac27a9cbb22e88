package ljson

// defaultMaxDepth bounds array/object nesting during parsing: a
// pathological input like "[[[[[..." would otherwise recurse until the
// goroutine stack is exhausted, which Go would happily grow to gigabytes
// before failing.
const defaultMaxDepth = 128

// ParserOption configures a Parser created by NewParser or used directly
// by Parse.
type ParserOption func(*parserConfig)

type parserConfig struct {
	initialScratchCapacity int
	maxDepth               int
}

func defaultParserConfig() parserConfig {
	return parserConfig{
		initialScratchCapacity: defaultScratchCapacity,
		maxDepth:               defaultMaxDepth,
	}
}

// WithInitialScratchCapacity sets the initial byte capacity of the
// parser's scratch buffer. It is a pure performance knob: behavior is
// unchanged, but a caller who knows their inputs tend to contain long
// strings or deep arrays can avoid a few reallocations.
func WithInitialScratchCapacity(n int) ParserOption {
	return func(c *parserConfig) {
		c.initialScratchCapacity = n
	}
}

// WithMaxDepth overrides the maximum array/object nesting depth the parser
// will follow before failing with ErrInvalidValue.
func WithMaxDepth(n int) ParserOption {
	return func(c *parserConfig) {
		c.maxDepth = n
	}
}

// SerializerOption configures a Serializer created by NewSerializer or used
// directly by Serialize.
type SerializerOption func(*serializerConfig)

type serializerConfig struct {
	initialScratchCapacity int
}

func defaultSerializerConfig() serializerConfig {
	return serializerConfig{
		initialScratchCapacity: defaultScratchCapacity,
	}
}

// WithSerializerInitialScratchCapacity sets the initial byte capacity of
// the serializer's scratch buffer.
func WithSerializerInitialScratchCapacity(n int) SerializerOption {
	return func(c *serializerConfig) {
		c.initialScratchCapacity = n
	}
}
