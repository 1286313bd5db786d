package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/marisvali/suika1/highscore"
	"github.com/marisvali/suika1/sim"
)

// GameResult is what is left of a game once it ends.
type GameResult struct {
	Score       int64
	Id          uuid.UUID
	Playthrough []byte
}

// UploadUserData runs for the whole life of the program. It saves the
// results of finished games on the device and, if uploads are enabled,
// sends them to the server. Uploads are slow so they must not run on the
// goroutine of Update().
func UploadUserData(user string, store highscore.Store,
	ch chan GameResult) {
	for {
		// Receive a result from the channel.
		// Blocks until a result is received.
		result := <-ch

		board, err := highscore.Record(store, result.Score)
		if err != nil {
			log.Printf("can't save high scores: %v", err)
		}

		err = UploadPlaythroughHttp(user, ReleaseVersion,
			sim.SimulationVersion, sim.InputVersion, result.Id,
			result.Playthrough)
		if err != nil {
			log.Printf("can't upload playthrough %s: %v", result.Id, err)
		}
		err = SetUserDataHttp(user, board.String())
		if err != nil {
			log.Printf("can't upload high scores: %v", err)
		}
	}
}
