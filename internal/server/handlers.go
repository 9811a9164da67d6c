package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/oceancruise/cruise"
	"github.com/katalvlaran/oceancruise/geo"
	"github.com/katalvlaran/oceancruise/internal/mapexport"
	"github.com/katalvlaran/oceancruise/internal/store"
	"github.com/katalvlaran/oceancruise/route"
)

type stationsRequest struct {
	Stations []cruise.Station `json:"stations"`
}

type orderRequest struct {
	Name        string           `json:"name"`
	Orientation string           `json:"orientation"`
	Stations    []cruise.Station `json:"stations"`
	Save        bool             `json:"save"`
}

type distancesResponse struct {
	SegmentsKm   []float64 `json:"segments_km"`
	CumulativeKm []float64 `json:"cumulative_km"`
	LengthKm     float64   `json:"length_km"`
}

type orderResponse struct {
	Name        string            `json:"name,omitempty"`
	Order       []int             `json:"order"`
	Orientation route.Orientation `json:"orientation"`
	Cost        float64           `json:"cost"`
	Degenerate  bool              `json:"degenerate"`
	Warning     string            `json:"warning,omitempty"`
	Stations    []cruise.Station  `json:"stations"`
	OrderingID  int64             `json:"ordering_id,omitempty"`
	distancesResponse
}

func distancesOf(track cruise.Track) distancesResponse {
	cum := track.CumulativeDistances(geo.EarthRadiusKm)
	out := distancesResponse{
		SegmentsKm:   track.SegmentDistances(geo.EarthRadiusKm),
		CumulativeKm: cum,
	}
	if len(cum) > 0 {
		out.LengthKm = cum[len(cum)-1]
	}

	return out
}

func newOrderResponse(sorted cruise.Track, res route.Result) orderResponse {
	out := orderResponse{
		Name:              sorted.Name,
		Order:             res.Order,
		Orientation:       res.Orientation,
		Cost:              res.Cost,
		Degenerate:        res.Degenerate,
		Stations:          sorted.Stations,
		distancesResponse: distancesOf(sorted),
	}
	if res.Warning != nil {
		out.Warning = res.Warning.Error()
	}

	return out
}

// checkStations enforces the size cap and coordinate validity. It writes
// the error response itself and reports whether the handler may go on.
func (s *Server) checkStations(c *gin.Context, stations []cruise.Station) bool {
	if len(stations) > s.deps.MaxStations {
		errTooLarge(c, fmt.Sprintf("%d stations exceed the limit of %d", len(stations), s.deps.MaxStations))
		return false
	}
	for i, st := range stations {
		if _, err := geo.NewPoint(st.Lat, st.Lon); err != nil {
			errBadRequest(c, fmt.Sprintf("station %d (%s): %v", i, st.Name, err))
			return false
		}
	}

	return true
}

func (s *Server) sortTrack(e *route.Engine, track cruise.Track) (cruise.Track, route.Result, error) {
	start := time.Now()
	sorted, res, err := track.Sort(e)
	s.deps.Metrics.ObserveOrdering(track.Len(), res, time.Since(start), err)
	if err != nil {
		s.deps.Logger.Error("ordering failed", "cruise", track.Name, "stations", track.Len(), "error", err)
	}

	return sorted, res, err
}

// persist saves the ordered track and records the run against the station
// names of input, the track the engine received.
func (s *Server) persist(c *gin.Context, input, sorted cruise.Track, res route.Result, resp *orderResponse) bool {
	ctx := c.Request.Context()
	if _, err := s.deps.Store.SaveTrack(ctx, sorted); err != nil {
		errInternal(c, err.Error())
		return false
	}
	id, err := s.deps.Store.RecordOrdering(ctx, sorted.Name, input.Names(), res, resp.LengthKm)
	if err != nil {
		errInternal(c, err.Error())
		return false
	}
	resp.OrderingID = id

	return true
}

func (s *Server) handleOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !s.checkStations(c, req.Stations) {
		return
	}
	if req.Save {
		if s.deps.Store == nil {
			errUnavailable(c, "persistence is disabled")
			return
		}
		if req.Name == "" {
			errBadRequest(c, "name is required to save")
			return
		}
	}

	e, err := s.engineFor(req.Orientation)
	if err != nil {
		errBadRequest(c, err.Error())
		return
	}

	track := cruise.Track{Name: req.Name, Stations: req.Stations}
	sorted, res, err := s.sortTrack(e, track)
	if err != nil {
		errInternal(c, err.Error())
		return
	}

	resp := newOrderResponse(sorted, res)
	if req.Save && !s.persist(c, track, sorted, res, &resp) {
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleDistances(c *gin.Context) {
	var req stationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !s.checkStations(c, req.Stations) {
		return
	}

	c.JSON(http.StatusOK, distancesOf(cruise.Track{Stations: req.Stations}))
}

func (s *Server) handleSaveCruise(c *gin.Context) {
	var track cruise.Track
	if err := c.ShouldBindJSON(&track); err != nil {
		errBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := track.Validate(); err != nil {
		errBadRequest(c, err.Error())
		return
	}
	if !s.checkStations(c, track.Stations) {
		return
	}

	id, err := s.deps.Store.SaveTrack(c.Request.Context(), track)
	if err != nil {
		errInternal(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "name": track.Name, "stations": track.Len()})
}

func (s *Server) handleListCruises(c *gin.Context) {
	list, err := s.deps.Store.ListCruises(c.Request.Context())
	if err != nil {
		errInternal(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"cruises": list})
}

// loadTrack fetches the :name cruise, answering 404 or 500 on failure.
func (s *Server) loadTrack(c *gin.Context) (cruise.Track, bool) {
	track, err := s.deps.Store.Track(c.Request.Context(), c.Param("name"))
	if errors.Is(err, store.ErrNotFound) {
		errNotFound(c, err.Error())
		return cruise.Track{}, false
	}
	if err != nil {
		errInternal(c, err.Error())
		return cruise.Track{}, false
	}

	return track, true
}

func (s *Server) handleGetCruise(c *gin.Context) {
	track, ok := s.loadTrack(c)
	if !ok {
		return
	}
	runs, err := s.deps.Store.Orderings(c.Request.Context(), track.Name)
	if err != nil {
		errInternal(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"track":     track,
		"distances": distancesOf(track),
		"orderings": runs,
	})
}

func (s *Server) handleDeleteCruise(c *gin.Context) {
	err := s.deps.Store.DeleteTrack(c.Request.Context(), c.Param("name"))
	if errors.Is(err, store.ErrNotFound) {
		errNotFound(c, err.Error())
		return
	}
	if err != nil {
		errInternal(c, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleCruiseGeoJSON(c *gin.Context) {
	track, ok := s.loadTrack(c)
	if !ok {
		return
	}
	data, err := mapexport.Marshal(track)
	if err != nil {
		errInternal(c, err.Error())
		return
	}

	c.Data(http.StatusOK, "application/geo+json", data)
}

// handleOrderCruise sorts a stored cruise in place and records the run.
func (s *Server) handleOrderCruise(c *gin.Context) {
	track, ok := s.loadTrack(c)
	if !ok {
		return
	}
	e, err := s.engineFor(c.Query("orientation"))
	if err != nil {
		errBadRequest(c, err.Error())
		return
	}

	sorted, res, err := s.sortTrack(e, track)
	if err != nil {
		errInternal(c, err.Error())
		return
	}

	resp := newOrderResponse(sorted, res)
	if !s.persist(c, track, sorted, res, &resp) {
		return
	}

	c.JSON(http.StatusOK, resp)
}
