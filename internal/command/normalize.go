// Package command turns command-line input into admin RPC requests.
package command

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xbridge-witness/xbwd/internal/rpccall"
)

var (
	// ErrParseJSON is returned if the --json argument is not valid JSON.
	ErrParseJSON = errors.New("could not parse json command")
	// ErrInvalidCommand is returned for a positional command which is not
	// one of the bare commands.
	ErrInvalidCommand = errors.New("invalid command")
)

// bareCommands are the positional commands accepted without --json. The
// server may support more methods; those must be sent via --json.
var bareCommands = map[string]bool{
	rpccall.MethodStop:       true,
	rpccall.MethodServerInfo: true,
}

// Normalize builds the request for an admin invocation. If raw is not nil it
// holds the --json argument, which is either a JSON object, a JSON string
// naming a method, or a bare method name. Otherwise cmd must be one of the
// bare commands. The api_version field is always set to the newest supported
// version.
func Normalize(raw *string, cmd string) (rpccall.Request, error) {
	var req rpccall.Request
	if raw != nil {
		var err error
		if req, err = fromJSON(*raw); err != nil {
			return nil, err
		}
	} else {
		if !bareCommands[cmd] {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCommand, cmd)
		}
		req = rpccall.Request{rpccall.FieldMethod: cmd}
	}
	req[rpccall.FieldAPIVersion] = rpccall.APIMaximumSupportedVersion
	return req, nil
}

func fromJSON(s string) (rpccall.Request, error) {
	// a bare method name is shorthand for a JSON string
	if s != "" && s[0] != '{' && s[0] != '"' {
		quoted, err := json.Marshal(s)
		if err != nil {
			return nil, ErrParseJSON
		}
		s = string(quoted)
	}
	var value any
	if err := json.Unmarshal([]byte(s), &value); err != nil {
		return nil, ErrParseJSON
	}
	switch v := value.(type) {
	case string:
		return rpccall.Request{rpccall.FieldMethod: v}, nil
	case map[string]any:
		return rpccall.Request(v), nil
	default:
		return nil, ErrParseJSON
	}
}
