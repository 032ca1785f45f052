package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gorilla/websocket"

	"blitzbot/internal/bot"
)

// Wire messages exchanged with the game server. The snapshot rides inside
// the TICK payload in the same shape bot.TeamGameState unmarshals from.
type baseMsg struct {
	Type string `json:"type"`
}

type registerMsg struct {
	Type     string `json:"type"`
	TeamName string `json:"teamName"`
}

type registeredMsg struct {
	Type   string `json:"type"`
	TeamID string `json:"teamId"`
}

type tickMsg struct {
	Type    string            `json:"type"`
	Payload bot.TeamGameState `json:"payload"`
}

type actionsMsg struct {
	Type    string       `json:"type"`
	Tick    int          `json:"tick"`
	Actions []bot.Action `json:"actions"`
}

func main() {
	var (
		url        = flag.String("url", "ws://localhost:8765", "game server websocket url")
		name       = flag.String("name", "blitzbot", "team name to register")
		tuningPath = flag.String("tuning", "", "optional tuning YAML file")
		verbose    = flag.Bool("verbose", false, "print every decision")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[blitzbot] ", log.LstdFlags|log.Lmicroseconds)

	tuning := bot.DefaultTuning()
	if *tuningPath != "" {
		var err error
		tuning, err = bot.LoadTuning(*tuningPath)
		if err != nil {
			logger.Fatalf("tuning: %v", err)
		}
	}

	conn, _, err := websocket.DefaultDialer.Dial(*url, nil)
	if err != nil {
		logger.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(registerMsg{Type: "REGISTER", TeamName: *name}); err != nil {
		logger.Fatalf("send REGISTER: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	var decisionLog *bot.DecisionLog
	if *verbose {
		decisionLog = bot.NewDecisionLog()
	}
	engine := bot.NewEngine(tuning, decisionLog)
	logged := 0

	for {
		select {
		case <-stop:
			return
		default:
		}

		_, msg, err := conn.ReadMessage()
		if err != nil {
			logger.Printf("read: %v", err)
			return
		}
		var base baseMsg
		if err := json.Unmarshal(msg, &base); err != nil {
			continue
		}
		switch base.Type {
		case "REGISTERED":
			var reg registeredMsg
			if err := json.Unmarshal(msg, &reg); err != nil {
				continue
			}
			logger.Printf("REGISTERED team_id=%s", reg.TeamID)

		case "TICK":
			var tick tickMsg
			if err := json.Unmarshal(msg, &tick); err != nil {
				logger.Printf("bad TICK payload: %v", err)
				continue
			}
			actions := engine.Decide(&tick.Payload)
			reply := actionsMsg{
				Type:    "ACTIONS",
				Tick:    tick.Payload.CurrentTickNumber,
				Actions: actions,
			}
			if err := conn.WriteJSON(reply); err != nil {
				logger.Printf("send ACTIONS: %v", err)
				return
			}
			if decisionLog != nil {
				for _, e := range decisionLog.Entries()[logged:] {
					logger.Print(e.String())
				}
				logged = len(decisionLog.Entries())
			}
		}
	}
}
