// Command pinwheel is an interactive demo of the input-method core: it
// reads lines of pinyin keys from stdin, prints the derived texts whenever
// they change, and prints the candidate list after each line of keys.
//
// Commands: plain keys are inserted one by one; ":<n>" selects candidate
// n, ":f<n>" focuses it, ":b" is backspace, ":w" removes the word before
// the cursor, ":r" resets, ":c" commits converted, ":raw" commits raw,
// ":q" quits.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bufio"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/inkstone-im/pinwheel/internal/adapter/sqlite"
	"github.com/inkstone-im/pinwheel/internal/app"
	"github.com/inkstone-im/pinwheel/internal/config"
	"github.com/inkstone-im/pinwheel/internal/convert"
	"github.com/inkstone-im/pinwheel/internal/ime"
)

// printer shows every context notification on stdout.
type printer struct{}

func (printer) CommitText(text string) { fmt.Printf("commit: %s\n", text) }
func (printer) InputTextChanged(text string) {
	fmt.Printf("input:  %s\n", text)
}
func (printer) CursorChanged(cursor int) {}
func (printer) PreeditTextChanged(p ime.PreeditText) {
	fmt.Printf("preedit: [%s][%s][%s]\n", p.Selected, p.Candidate, p.Rest)
}
func (printer) AuxiliaryTextChanged(aux string) {
	fmt.Printf("aux:    %s\n", aux)
}
func (printer) CandidatesChanged() {}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("pinwheel starting", slog.String("version", app.BuildVersion()))

	store, err := sqlite.Open(sqlite.Config{
		MainDictPaths: cfg.Dict.MainDictPathList(),
		UserDataDir:   cfg.Dict.UserDataDir,
		Logger:        logger,
	})
	if err != nil {
		logger.Error("open dictionary", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	ctx := ime.NewFullPinyinContext(store, convert.NewTable(), nil, nil,
		ime.ContextConfig{
			Option:   cfg.IME.Option(),
			ModeSimp: cfg.IME.ModeSimp,
		}, printer{})

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("type pinyin; :<n> select, :f<n> focus, :b backspace, :w del word, :c commit, :raw raw, :r reset, :q quit")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == ":q":
			return
		case line == ":c":
			ctx.Commit(ime.TypeConverted)
		case line == ":raw":
			ctx.Commit(ime.TypeRaw)
		case line == ":r":
			ctx.Reset()
		case line == ":b":
			ctx.RemoveCharBefore()
		case line == ":w":
			ctx.RemoveWordBefore()
		case strings.HasPrefix(line, ":f"):
			if n, err := strconv.Atoi(line[2:]); err == nil {
				ctx.FocusCandidate(n)
			}
		case strings.HasPrefix(line, ":"):
			if n, err := strconv.Atoi(line[1:]); err == nil {
				ctx.SelectCandidate(n)
			}
		default:
			for i := 0; i < len(line); i++ {
				if !ctx.Insert(line[i]) {
					fmt.Printf("rejected: %q\n", line[i])
				}
			}
			showCandidates(ctx.Context)
		}
	}
}

func showCandidates(ctx *ime.Context) {
	cands := ctx.Candidates()
	if len(cands) == 0 {
		return
	}
	var b strings.Builder
	for i, c := range cands {
		if i == 8 {
			b.WriteString(" …")
			break
		}
		fmt.Fprintf(&b, " %d.%s", i, c.Text)
	}
	fmt.Printf("cands: %s\n", b.String())
}
