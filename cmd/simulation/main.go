package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/gorilla/websocket"
)

// Scripted interview client. Connects to a running server, plays through a
// short session and prints both sides of the conversation.

var (
	interviewerOut = color.New(color.FgCyan)
	candidateOut   = color.New(color.FgGreen)
	systemOut      = color.New(color.FgYellow)
)

type outbound struct {
	Type     string `json:"type"`
	Turn     int    `json:"turn,omitempty"`
	Question string `json:"question,omitempty"`
	Preface  string `json:"preface,omitempty"`
	Message  string `json:"message,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Source   string `json:"source,omitempty"`
}

func main() {
	wsURL := flag.String("url", "ws://localhost:3000/ws/interview", "interview websocket endpoint")
	style := flag.String("style", "neutral", "interviewer style (supportive, neutral, cold)")
	flag.Parse()

	fmt.Println("=== Interview Simulation Client ===")

	conn, _, err := websocket.DefaultDialer.Dial(*wsURL, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	answers := []string{
		"I don't know.",
		"In my last role I led a migration of our billing service to a new queueing system. I planned the rollout in three stages, measured error rates at each stage, and we cut processing latency by about 40 percent.",
		"A conflict I remember was with a teammate over API design. I scheduled a short call, we wrote both options down, and we agreed to prototype each for a day. The data settled it and we shipped the simpler one.",
		"My main weakness is that I over-prepare. I have been working on timeboxing my research phase so that I start building earlier.",
	}

	send(conn, map[string]interface{}{
		"type":         "start_session",
		"style":        *style,
		"group":        "treatment",
		"maxQuestions": len(answers),
	})

	next := 0
	for {
		var msg outbound
		if err := conn.ReadJSON(&msg); err != nil {
			systemOut.Printf("connection closed: %v\n", err)
			return
		}

		switch msg.Type {
		case "session_ready", "session_started":
			systemOut.Printf("[%s]\n", msg.Type)
		case "question":
			if msg.Preface != "" {
				interviewerOut.Printf("INTERVIEWER: %s\n", msg.Preface)
			}
			interviewerOut.Printf("INTERVIEWER (turn %d): %s\n", msg.Turn, msg.Question)
			if next >= len(answers) {
				continue
			}
			answer := answers[next]
			next++
			time.Sleep(500 * time.Millisecond)
			candidateOut.Printf("CANDIDATE: %s\n", answer)
			send(conn, map[string]interface{}{
				"type":   "user_answer",
				"answer": answer,
			})
		case "interviewer_message":
			interviewerOut.Printf("INTERVIEWER: %s\n", msg.Message)
		case "tips":
			systemOut.Println("[coaching tips received]")
		case "session_ended":
			interviewerOut.Printf("INTERVIEWER: %s\n", msg.Message)
			systemOut.Printf("[session ended: %s]\n", msg.Reason)
			return
		case "error":
			systemOut.Printf("[error: %s]\n", msg.Message)
		}
	}
}

func send(conn *websocket.Conn, payload map[string]interface{}) {
	data, _ := json.Marshal(payload)
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Fatalf("Failed to send: %v", err)
	}
}
