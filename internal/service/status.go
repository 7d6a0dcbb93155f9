package service

import (
	"time"

	"flyfund/pkg/types"
)

// Status builds a detailed status response for /status.
func (s *Service) Status() types.StatusResponse {
	snap := s.eng.Snapshot()
	resp := types.StatusResponse{
		State:            string(snap.State),
		RegistryCount:    s.reg.Len(),
		QueueLen:         s.adm.queueLen(),
		Inflight:         s.adm.inflight(),
		MaxQueueDepth:    s.adm.depth(),
		LoadsTotal:       snap.LoadsTotal,
		GenerationsTotal: snap.GenerationsTotal,
		LastError:        snap.LastError,
		UptimeSeconds:    int64(time.Since(s.startTime).Seconds()),
		ServerTimeUnix:   time.Now().Unix(),
	}
	if snap.Model != nil {
		resp.Loaded = &types.LoadedModelStatus{
			ModelID:     snap.Model.ID,
			Path:        snap.Model.Path,
			GPULayers:   snap.Model.GPULayers,
			LoadedAt:    snap.Model.LoadedAt.Unix(),
			MemoryBytes: s.eng.MemoryUsage(),
		}
	}
	return resp
}
