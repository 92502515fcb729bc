// Command respace rewrites smashed-together "title" fields in a JSON batch
// file into readable, space-separated text.
//
// The word list is downloaded once at startup (dwyl/english-words by
// default) and degrades to a small built-in list when the download fails,
// so a run never aborts on network trouble alone.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/npillmayer/respace"
	"github.com/npillmayer/respace/remote"
	"github.com/npillmayer/respace/wordlists"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red("error: ")+err.Error())
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "respace",
		Short: "Rewrite concatenated title fields into readable text",
		Long: `respace reads a JSON array of records, splits every "title" field at
case and digit boundaries, decomposes the remaining runs into known
dictionary words, and writes the rewritten records to the output file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBatch,
	}
	flags := cmd.Flags()
	flags.StringP("input", "i", "game_list.json", "input JSON file (array of records)")
	flags.StringP("output", "o", "games.json", "output JSON file")
	flags.String("wordlist-url", remote.DefaultWordlistURL, "word list URL, one word per line")
	flags.Bool("offline", false, "skip the download, use the built-in word list")
	flags.Duration("timeout", 10*time.Second, "word list download timeout")
	_ = viper.BindPFlag("wordlist_url", flags.Lookup("wordlist-url"))
	viper.SetEnvPrefix("RESPACE")
	viper.AutomaticEnv()
	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	offline, _ := cmd.Flags().GetBool("offline")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	url := viper.GetString("wordlist_url")

	var lex *respace.Lexicon
	if offline {
		fmt.Println(yellow("offline mode, using built-in word list"))
		lex = wordlists.Fallback()
	} else {
		fmt.Printf("downloading word list from %s\n", url)
		lex = remote.LoadLexiconOrFallback(cmd.Context(), url, timeout)
	}
	fmt.Printf("lexicon ready: %d words\n", lex.Size())

	n, err := processFile(lex, input, output)
	if err != nil {
		return err
	}
	fmt.Println(green(fmt.Sprintf("processed %d records into %s", n, output)))
	return nil
}
