package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptContinue asks a yes/no question on out and reads the answer from in.
// Only an explicit yes counts. Without a terminal on stdin the prompt is
// skipped and the answer is no, so scripts never block.
func PromptContinue(in io.Reader, out io.Writer, message string) bool {
	if !StdinIsTerminal() {
		return false
	}
	return promptYesNo(in, out, message)
}

func promptYesNo(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", message)

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))

	return response == "y" || response == "yes"
}
