package pretty

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/pretty"
)

// PrefixPrettyWriter uses json marshal to pretty output an interface object
func PrefixPrettyWriter(writer io.Writer, prefix string, object interface{}) error {
	objectString, err := json.Marshal(object)
	if err != nil {
		return err
	}

	if prefix != "" {
		prefix += ": "
	}

	_, err = fmt.Fprintf(writer, "%s%s\n", prefix, pretty.Pretty(objectString))
	return err
}
