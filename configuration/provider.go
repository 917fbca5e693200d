package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/spf13/pflag"

	"github.com/iotaledger/ranges/ierrors"
)

// ErrNotSupported is returned by the provider methods that only make sense for file based providers.
var ErrNotSupported = ierrors.New("pflag provider does not support this method")

// lowerPosflag implements a pflag command line provider.
type lowerPosflag struct {
	delim   string
	flagset *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a provider that turns flags into a nested map with lower cased keys, split at delim
// ("range.lower: 1" becomes {range: {lower: 1}}).
//
// Flags that were not changed on the command line only contribute their default value if the key is not already known
// to ko.
func lowerPosflagProvider(f *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagset: f,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	mp := make(map[string]interface{})
	p.flagset.VisitAll(func(f *pflag.Flag) {
		if !f.Changed && (p.ko == nil || p.ko.Exists(strings.ToLower(f.Name))) {
			return
		}

		var v interface{}
		switch f.Value.Type() {
		case "int":
			i, _ := p.flagset.GetInt(f.Name)
			v = int64(i)
		case "int8":
			i, _ := p.flagset.GetInt8(f.Name)
			v = int64(i)
		case "int16":
			i, _ := p.flagset.GetInt16(f.Name)
			v = int64(i)
		case "int32":
			i, _ := p.flagset.GetInt32(f.Name)
			v = int64(i)
		case "int64":
			v, _ = p.flagset.GetInt64(f.Name)
		case "float32":
			v, _ = p.flagset.GetFloat32(f.Name)
		case "float64":
			v, _ = p.flagset.GetFloat64(f.Name)
		case "bool":
			v, _ = p.flagset.GetBool(f.Name)
		case "stringSlice":
			v, _ = p.flagset.GetStringSlice(f.Name)
		case "intSlice":
			v, _ = p.flagset.GetIntSlice(f.Name)
		default:
			v = f.Value.String()
		}

		mp[strings.ToLower(f.Name)] = v
	})

	return maps.Unflatten(mp, p.delim), nil
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, ErrNotSupported
}

// Watch is not supported by the pflag provider.
func (p *lowerPosflag) Watch(_ func(event interface{}, err error)) error {
	return ErrNotSupported
}
