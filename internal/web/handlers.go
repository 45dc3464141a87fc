package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ehrlich-b/skewb/internal/sfen"
	"github.com/ehrlich-b/skewb/internal/skewb"
)

type SolveRequest struct {
	Scramble string `json:"scramble,omitempty"`
	Sfen     string `json:"sfen,omitempty"`
}

type SolveResponse struct {
	Solution string `json:"solution"`
	Steps    int    `json:"steps"`
}

type RankRequest struct {
	Sfen string `json:"sfen"`
}

type RankResponse struct {
	Num uint64 `json:"num"`
}

type UnrankRequest struct {
	Num uint64 `json:"num"`
}

type UnrankResponse struct {
	Sfen string `json:"sfen"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Skewb Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>Skewb Solver</h1>
    <div class="container">
        <h2>Solve Your Skewb</h2>
        <form id="solveForm">
            <div>
                <label>Scramble:</label><br>
                <input type="text" id="scramble" placeholder="U L' D R" style="width: 300px;">
            </div>
            <div>
                <label>Or SFEN state:</label><br>
                <input type="text" id="sfen" placeholder="052143/01734265/00200212" style="width: 300px;">
            </div>
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const scramble = document.getElementById('scramble').value;
            const sfen = document.getElementById('sfen').value;

            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ scramble, sfen })
                });

                if (!response.ok) {
                    throw new Error(await response.text());
                }
                const result = await response.json();
                document.getElementById('result').innerHTML =
                    '<h3>Solution:</h3><p>' + (result.solution || '(already solved)') + '</p>' +
                    '<p><strong>Steps:</strong> ' + result.steps + '</p>';
                document.getElementById('result').style.display = 'block';
            } catch (error) {
                document.getElementById('result').innerHTML = '<p style="color: red;">Error: ' + error.message + '</p>';
                document.getElementById('result').style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

// requestedState builds the query state: the SFEN state if given,
// otherwise solved, with the scramble applied on top.
func requestedState(req *SolveRequest) (*skewb.Skewb, error) {
	var s *skewb.Skewb
	if req.Sfen != "" {
		state, err := sfen.Parse(req.Sfen)
		if err != nil {
			return nil, err
		}
		s, err = state.ToSkewb()
		if err != nil {
			return nil, err
		}
	} else {
		s = skewb.NewSkewb()
	}

	if req.Scramble != "" {
		moves, err := skewb.ParseScramble(req.Scramble)
		if err != nil {
			return nil, err
		}
		s.ApplyMoves(moves)
	}

	return s, nil
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	state, err := requestedState(&req)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error building state: %v", err), http.StatusBadRequest)
		return
	}

	table, err := s.solutionTable()
	if err != nil {
		http.Error(w, fmt.Sprintf("Error generating table: %v", err), http.StatusInternalServerError)
		return
	}

	solution, err := table.Solve(state.StateNum())
	if err != nil {
		if errors.Is(err, skewb.ErrStateNotReached) {
			http.Error(w, fmt.Sprintf("Error solving: %v", err), http.StatusBadRequest)
		} else {
			http.Error(w, fmt.Sprintf("Error solving: %v", err), http.StatusInternalServerError)
		}
		return
	}

	response := SolveResponse{
		Solution: skewb.FormatMoves(solution),
		Steps:    len(solution),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	state, err := sfen.Parse(req.Sfen)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error parsing SFEN: %v", err), http.StatusBadRequest)
		return
	}
	sk, err := state.ToSkewb()
	if err != nil {
		http.Error(w, fmt.Sprintf("Error converting SFEN: %v", err), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RankResponse{Num: sk.StateNum()})
}

func (s *Server) handleUnrank(w http.ResponseWriter, r *http.Request) {
	var req UnrankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	sk := skewb.NewSkewbFromState(req.Num)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(UnrankResponse{Sfen: sfen.Generate(sk)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
