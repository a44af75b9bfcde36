package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"twentyeight-server/internal/jwt"
	"twentyeight-server/pkg/table"
)

var command = flag.String("c", "player", "specifies the command (player)")

func main() {
	flag.Parse()

	switch *command {
	case "player":
		jwt.LoadKeys()

		name, err := getInput("Display name")
		if err != nil {
			logrus.WithError(err).Fatal("could not get answer")
		}

		if name == "" {
			os.Exit(1)
		}

		player, err := table.CreatePlayer(context.Background(), name, "127.0.0.1")
		if err != nil {
			logrus.WithError(err).Fatal("could not create player")
		}

		signed, err := jwt.Sign(player.ID)
		if err != nil {
			logrus.WithError(err).Fatal("could not sign JWT")
		}

		fmt.Printf("Created player %d\n", player.ID)
		fmt.Printf("JWT: %s\n", signed)
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func getInput(question string) (string, error) {
	fmt.Printf("%s: ", question)
	reader := bufio.NewReader(os.Stdin)
	str, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	str = strings.TrimRight(str, "\r\n")

	return str, nil
}
