// abi-inspect prints the canonical signatures and selectors of a contract
// ABI document and maintains a local selector database.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"github.com/boolw/go-abi/abi"
	"github.com/boolw/go-abi/eip712"
	"github.com/boolw/go-abi/selectordb"
)

var (
	abiURL string
	dbPath string

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

var rootCmd = &cobra.Command{
	Use:   "abi-inspect",
	Short: "Inspect contract ABI documents",
	Long:  "Parse JSON ABI documents, EIP-712 type strings and error signatures, and derive their selectors.",
}

var selectorsCmd = &cobra.Command{
	Use:   "selectors [abi.json]",
	Short: "Print the signature and selector of every item",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadABI(args)
		if err != nil {
			return err
		}
		for _, name := range sortedKeys(a.Functions) {
			f := a.Functions[name]
			fmt.Printf("function  %s  %s\n", f.Selector().Hex(), f.Signature())
		}
		for _, name := range sortedKeys(a.Events) {
			e := a.Events[name]
			fmt.Printf("event     %s  %s\n", e.Selector().Hex(), e.Signature())
		}
		for _, name := range sortedKeys(a.Errors) {
			e := a.Errors[name]
			fmt.Printf("error     %s  %s\n", e.Selector().Hex(), e.Signature())
		}
		return nil
	},
}

var indexCmd = &cobra.Command{
	Use:   "index [abi.json]",
	Short: "Record the document's selectors in the selector database",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadABI(args)
		if err != nil {
			return err
		}
		store, err := selectordb.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.IndexABI(a); err != nil {
			return err
		}
		logger.Info().
			Str("db", dbPath).
			Int("functions", len(a.Functions)).
			Int("events", len(a.Events)).
			Int("errors", len(a.Errors)).
			Msg("indexed")
		return nil
	},
}

var errorSigCmd = &cobra.Command{
	Use:   "error-sig <signature>",
	Short: "Parse a free-text error signature and print its selector",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := abi.ParseError(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", e.Selector().Hex(), e.Signature())
		return nil
	},
}

var eip712Cmd = &cobra.Command{
	Use:   "eip712 <encodeType>",
	Short: "Split an EIP-712 encodeType string into its component types",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := eip712.ParseEncodeType(args[0])
		if len(enc.Types) == 0 {
			return fmt.Errorf("no component types in %q", args[0])
		}
		for i := range enc.Types {
			c := &enc.Types[i]
			fmt.Printf("%s\n", c.TypeName)
			for _, p := range c.Props {
				fmt.Printf("    %s\n", p.String())
			}
		}
		return nil
	},
}

// loadABI reads the document from the positional file argument or fetches
// it from --url.
func loadABI(args []string) (*abi.ABI, error) {
	var body []byte
	switch {
	case abiURL != "":
		status, b, err := fasthttp.Get(nil, abiURL)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %v", abiURL, err)
		}
		if status != fasthttp.StatusOK {
			return nil, fmt.Errorf("fetch %s: status %d", abiURL, status)
		}
		body = b
	case len(args) == 1:
		b, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		body = b
	default:
		return nil, fmt.Errorf("an abi file or --url is required")
	}
	return abi.NewABI(string(body))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func main() {
	rootCmd.PersistentFlags().StringVar(&abiURL, "url", "", "fetch the ABI document from a URL instead of a file")
	indexCmd.Flags().StringVar(&dbPath, "db", "selectors.db", "selector database path")

	rootCmd.AddCommand(selectorsCmd, indexCmd, errorSigCmd, eip712Cmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("abi-inspect failed")
	}
}
