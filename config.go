package rsa16

// DefaultIV is the chaining IV used when a caller does not choose one
const DefaultIV byte = 0xA5

// Config holds the settings of a KeyContext that are independent of the key itself
type Config struct {
	// IV seeds both the encryption and the decryption chain. It must not be 0.
	IV byte `yaml:"iv"`
}

// DefaultConfig returns a Config using [DefaultIV]
func DefaultConfig() Config {
	return Config{IV: DefaultIV}
}

func (c Config) Validate() error {
	if c.IV == 0 {
		return ErrZeroIV
	}
	return nil
}
