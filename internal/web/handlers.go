package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ehrlich-b/twophase/internal/scramble"
)

// ScrambleRequest selects a puzzle. The 3x3x3 events are chosen through the
// puzzle name ("3x3x3-bld", "3x3x3-fmc"); Event is decoded but not used.
type ScrambleRequest struct {
	Puzzle string `json:"puzzle"`
	Event  string `json:"event,omitempty"`
}

// ScrambleResponse is a generated scramble plus a ready-to-click viewer
// link.
type ScrambleResponse struct {
	Puzzle      string `json:"puzzle"`
	Scramble    string `json:"scramble"`
	TwizzleLink string `json:"twizzleLink"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	const html = `<!DOCTYPE html>
<html>
<head>
    <title>Scramble Generator</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        select, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; font-family: monospace; }
    </style>
</head>
<body>
    <h1>Scramble Generator</h1>
    <div class="container">
        <form id="scrambleForm">
            <label>Puzzle:</label>
            <select id="puzzle">
                <option value="3x3x3">3x3x3</option>
                <option value="3x3x3-bld">3x3x3 (BLD)</option>
                <option value="3x3x3-fmc">3x3x3 (FMC)</option>
                <option value="4x4x4">4x4x4</option>
            </select>
            <button type="submit">Generate</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>
    <script>
        document.getElementById('scrambleForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const puzzle = document.getElementById('puzzle').value;
            try {
                const response = await fetch('/api/scramble', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ puzzle })
                });
                const result = await response.json();
                const box = document.getElementById('result');
                box.innerHTML = result.scramble
                    ? result.scramble + '<br><a href="' + result.twizzleLink + '" target="_blank">view</a>'
                    : 'Error: ' + result.error;
                box.style.display = 'block';
            } catch (error) {
                const box = document.getElementById('result');
                box.innerHTML = 'Error: ' + error.message;
                box.style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	var req ScrambleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	alg, puzzleID, err := generateScramble(req.Puzzle, req.Event)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := ScrambleResponse{
		Puzzle:      req.Puzzle,
		Scramble:    alg,
		TwizzleLink: scramble.TwizzleLink(puzzleID, alg),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func generateScramble(puzzleName, event string) (alg, puzzleID string, err error) {
	switch puzzleName {
	case "3x3x3":
		alg, err = scramble.Scramble3x3x3()
		return alg, "3x3x3", err
	case "3x3x3-bld":
		alg, err = scramble.Scramble3x3x3BLD()
		return alg, "3x3x3", err
	case "3x3x3-fmc":
		alg, err = scramble.Scramble3x3x3FMC()
		return alg, "3x3x3", err
	case "4x4x4":
		alg, err = scramble.Scramble4x4x4()
		return alg, "4x4x4", err
	default:
		return "", "", fmt.Errorf("unknown puzzle %q", puzzleName)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
