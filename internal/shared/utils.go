package shared

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

func Exitf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
	os.Exit(1)
}

func Exitln(a ...interface{}) {
	fmt.Println(a...)
	os.Exit(1)
}

func PromptYesNo(prompt string) bool {
	fmt.Print(prompt)
	if viper.GetBool("non-interactive") {
		fmt.Println("Y (non-interactive mode)")
		return true
	}
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		Exitf("Failed to prompt user: %v\n", err)
	}

	return !isNo(answer)
}

func isNo(answer string) bool {
	ansNormal := strings.ToLower(strings.TrimSpace(answer))
	return len(ansNormal) > 0 && ansNormal[0] == 'n'
}
