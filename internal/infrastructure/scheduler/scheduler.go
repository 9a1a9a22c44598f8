// Package scheduler registra las tareas periódicas del servicio sobre robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/stock-health-api/pkg/logger"
)

// Job tarea programada. Recibe un contexto con timeout por ejecución.
type Job func(ctx context.Context) error

// Scheduler maneja las tareas cron. Las expresiones llevan segundos (6 campos).
type Scheduler struct {
	cron    *cron.Cron
	log     *logger.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
	running sync.Map // nombre → struct{}; evita ejecuciones solapadas de la misma tarea
}

// New crea el scheduler. timeout acota cada ejecución (0 = sin límite).
func New(log *logger.Logger, timeout time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		log:     log.Component("scheduler"),
		ctx:     ctx,
		cancel:  cancel,
		timeout: timeout,
	}
}

// Register agrega una tarea con nombre. Si la ejecución anterior sigue corriendo, la
// nueva se omite.
func (s *Scheduler) Register(name, spec string, job Job) error {
	if _, err := s.cron.AddFunc(spec, func() { s.run(name, job) }); err != nil {
		return fmt.Errorf("registrar tarea %s: %w", name, err)
	}
	s.log.Info().Str("job", name).Str("cron", spec).Msg("tarea registrada")
	return nil
}

// RunNow ejecuta la tarea de inmediato, fuera del calendario.
func (s *Scheduler) RunNow(name string, job Job) {
	s.run(name, job)
}

func (s *Scheduler) run(name string, job Job) {
	if _, busy := s.running.LoadOrStore(name, struct{}{}); busy {
		s.log.Warn().Str("job", name).Msg("ejecución anterior en curso, se omite")
		return
	}
	defer s.running.Delete(name)

	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := job(ctx); err != nil {
		s.log.Error().Err(err).Str("job", name).Dur("elapsed", time.Since(start)).Msg("tarea fallida")
		return
	}
	s.log.Debug().Str("job", name).Dur("elapsed", time.Since(start)).Msg("tarea completada")
}

// Entries cantidad de tareas registradas.
func (s *Scheduler) Entries() int { return len(s.cron.Entries()) }

// Start inicia el scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler iniciado")
}

// Stop detiene el calendario, cancela las ejecuciones en curso y espera a que terminen
// o a que venza ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	s.cancel()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler detenido sin esperar tareas en curso")
		return
	}
	s.log.Info().Msg("scheduler detenido")
}
