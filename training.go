package fittracker

const (
	mInKm  = 1000.0
	minInH = 60.0
	cmInM  = 100.0

	lenStep         = 0.65
	swimmingLenStep = 1.38

	runningCaloriesMeanSpeedMultiplier = 18.0
	runningCaloriesMeanSpeedShift      = 1.79

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	kmhInMsec                       = 0.278

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2.0
)

// Training is one recorded workout of a concrete kind.
//
// The shared base record carries no calorie formula; every kind supplies its own.
type Training interface {
	Name() string
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
	ShowTrainingInfo() InfoMessage
}

// training holds the raw inputs shared by every workout kind.
type training struct {
	action   int     // strides or strokes
	duration float64 // hours
	weight   float64 // kilograms
}

// Duration returns the workout duration in hours.
func (t training) Duration() float64 {
	return t.duration
}

func (t training) distance(step float64) float64 {
	return float64(t.action) * step / mInKm
}

func showTrainingInfo(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

// Running is a run counted in strides.
type Running struct {
	training
}

// NewRunning builds a run from strides, hours and body weight in kg.
func NewRunning(action int, duration, weight float64) *Running {
	return &Running{training{action: action, duration: duration, weight: weight}}
}

// Name returns "Running".
func (r *Running) Name() string { return "Running" }

// Distance returns kilometers covered.
func (r *Running) Distance() float64 {
	return r.distance(lenStep)
}

// MeanSpeed returns the average speed in km/h.
func (r *Running) MeanSpeed() float64 {
	return r.Distance() / r.duration
}

// SpentCalories returns calories burned while running.
func (r *Running) SpentCalories() float64 {
	// float64 conversions keep the compiler from fusing multiply-add, so
	// results stay identical across architectures.
	speedTerm := float64(runningCaloriesMeanSpeedMultiplier*r.MeanSpeed()) + runningCaloriesMeanSpeedShift
	return (float64(speedTerm*r.weight) / mInKm) * float64(r.duration*minInH)
}

// ShowTrainingInfo collects the run summary.
func (r *Running) ShowTrainingInfo() InfoMessage {
	return showTrainingInfo(r)
}

// SportsWalking is a walk counted in steps, with the athlete height in cm.
type SportsWalking struct {
	training
	height float64
}

// NewSportsWalking builds a walk from steps, hours, weight in kg and height in cm.
func NewSportsWalking(action int, duration, weight, height float64) *SportsWalking {
	return &SportsWalking{
		training: training{action: action, duration: duration, weight: weight},
		height:   height,
	}
}

// Name returns "SportsWalking".
func (w *SportsWalking) Name() string { return "SportsWalking" }

// Distance returns kilometers covered.
func (w *SportsWalking) Distance() float64 {
	return w.distance(lenStep)
}

// MeanSpeed returns the average speed in km/h.
func (w *SportsWalking) MeanSpeed() float64 {
	return w.Distance() / w.duration
}

// SpentCalories returns calories burned while walking.
//
// The 0.029*weight factor scales only the speed/height quotient, not the
// 0.035*weight term.
func (w *SportsWalking) SpentCalories() float64 {
	speedMs := float64(w.MeanSpeed() * kmhInMsec)
	heightTerm := float64(float64(speedMs*speedMs)/(w.height/cmInM)*walkingSpeedHeightMultiplier) * w.weight
	return (float64(walkingCaloriesWeightMultiplier*w.weight) + heightTerm) * float64(w.duration*minInH)
}

// ShowTrainingInfo collects the walk summary.
func (w *SportsWalking) ShowTrainingInfo() InfoMessage {
	return showTrainingInfo(w)
}

// Swimming is a pool swim counted in strokes.
type Swimming struct {
	training
	lengthPool float64 // meters
	countPool  int     // lengths swum
}

// NewSwimming builds a swim from strokes, hours, weight in kg, pool length in
// meters and the number of pool lengths swum.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) *Swimming {
	return &Swimming{
		training:   training{action: action, duration: duration, weight: weight},
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

// Name returns "Swimming".
func (s *Swimming) Name() string { return "Swimming" }

// Distance returns kilometers derived from the stroke count.
func (s *Swimming) Distance() float64 {
	return s.distance(swimmingLenStep)
}

// MeanSpeed returns the average speed in km/h from pool lengths, independent
// of the stroke count.
func (s *Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / mInKm / s.duration
}

// SpentCalories returns calories burned while swimming.
func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.weight * s.duration
}

// ShowTrainingInfo collects the swim summary.
func (s *Swimming) ShowTrainingInfo() InfoMessage {
	return showTrainingInfo(s)
}
