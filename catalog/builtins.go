package catalog

// Built-in entry groups. Each register function covers one independently
// authored slice of the DSL surface; Build concatenates them in a fixed
// order so construction is deterministic.

func floatPtr(v float64) *float64 { return &v }

// ---- Namespaces ----

func registerNamespaces(r *Registry) {
	r.Register(&Entry{
		Kind:        KindNamespace,
		Name:        "inputs",
		Path:        "inputs",
		Description: "Audio inputs for the current project: the master mix and any separated stems.",
		Properties: []Property{
			{Name: "mix", Type: "AudioInput", Description: "The master mix as an analyzable audio input.", ReadOnly: true},
			{Name: "stems", Type: "StemMap", Description: "Separated stems keyed by name (drums, bass, vocals, other).", ReadOnly: true},
		},
		Example: "inputs.mix.energy.smooth(0.2)",
	})

	r.Register(&Entry{
		Kind:        KindNamespace,
		Name:        "fx",
		Path:        "fx",
		Description: "Post-processing effects applied to the rendered frame.",
		Methods: []Method{
			{
				Name:        "bloom",
				Description: "Adds a bloom pass. Bright areas above the threshold glow.",
				Params:      []Param{{Name: "opts", Type: "config-map", Description: "Bloom options.", Optional: true}},
				Returns:     "void",
			},
			{
				Name:        "blur",
				Description: "Adds a gaussian blur pass.",
				Params:      []Param{{Name: "opts", Type: "config-map", Description: "Blur options.", Optional: true}},
				Returns:     "void",
			},
			{
				Name:        "feedback",
				Description: "Adds a frame-feedback pass for trails and echo visuals.",
				Params:      []Param{{Name: "opts", Type: "config-map", Description: "Feedback options.", Optional: true}},
				Returns:     "void",
			},
			{
				Name:        "chroma",
				Description: "Adds a chromatic aberration pass.",
				Params:      []Param{{Name: "opts", Type: "config-map", Description: "Chromatic aberration options.", Optional: true}},
				Returns:     "void",
			},
			{
				Name:        "clear",
				Description: "Removes all effect passes.",
				Returns:     "void",
			},
		},
		Example: "fx.bloom(#{ threshold: 0.7, intensity: 1.2 })",
	})

	r.Register(&Entry{
		Kind:        KindBuilder,
		Name:        "line",
		Path:        "line",
		Description: "Builders for line-based scene entities.",
		Methods: []Method{
			{
				Name:        "strip",
				Description: "Creates a polyline strip entity.",
				Params:      []Param{{Name: "opts", Type: "config-map", Description: "Strip options.", Optional: true}},
				Returns:     "LineStripEntity",
			},
			{
				Name:        "ribbon",
				Description: "Creates a ribbon entity that trails over time.",
				Params:      []Param{{Name: "opts", Type: "config-map", Description: "Ribbon options.", Optional: true}},
				Returns:     "RibbonEntity",
			},
		},
		Example: "let beam = line.strip(#{ points: 64, color: \"cyan\" })",
	})

	r.Register(&Entry{
		Kind:        KindBuilder,
		Name:        "mesh",
		Path:        "mesh",
		Description: "Builders for 3D mesh and particle entities.",
		Methods: []Method{
			{
				Name:        "cube",
				Description: "Creates a cube mesh entity.",
				Params:      []Param{{Name: "opts", Type: "config-map", Description: "Cube options.", Optional: true}},
				Returns:     "MeshEntity",
			},
			{
				Name:        "sphere",
				Description: "Creates a sphere mesh entity.",
				Params:      []Param{{Name: "opts", Type: "config-map", Description: "Sphere options.", Optional: true}},
				Returns:     "MeshEntity",
			},
			{
				Name:        "particles",
				Description: "Creates a particle system entity.",
				Params:      []Param{{Name: "opts", Type: "config-map", Description: "Particle system options.", Optional: true}},
				Returns:     "ParticleEntity",
			},
		},
		Example: "mesh.cube(#{ size: 2, wireframe: true })",
	})

	r.Register(&Entry{
		Kind:        KindNamespace,
		Name:        "scene",
		Path:        "scene",
		Description: "The active scene graph and camera.",
		Properties: []Property{
			{Name: "camera", Type: "Camera", Description: "The scene camera.", ReadOnly: true},
			{Name: "background", Type: "string", Description: "Background palette name."},
		},
		Methods: []Method{
			{
				Name:        "add",
				Description: "Adds an entity to the scene. Entities created by builders are added automatically.",
				Params:      []Param{{Name: "entity", Type: "any", Description: "The entity to add."}},
				Returns:     "void",
			},
			{
				Name:        "clear",
				Description: "Removes every entity from the scene.",
				Returns:     "void",
			},
		},
		Example: "scene.camera.orbit(0.1)",
	})

	r.Register(&Entry{
		Kind:        KindNamespace,
		Name:        "beat",
		Path:        "beat",
		Description: "Beat and tempo information derived from the audio analysis.",
		Properties: []Property{
			{Name: "phase", Type: "Signal", Description: "Phase within the current beat, ramping 0..1.", ReadOnly: true},
			{Name: "bpm", Type: "float", Description: "Detected tempo in beats per minute.", ReadOnly: true},
		},
		Methods: []Method{
			{
				Name:        "every",
				Description: "A signal that pulses once every n beats.",
				Params:      []Param{{Name: "n", Type: "int", Description: "Beat interval.", Min: floatPtr(1)}},
				Returns:     "Signal",
			},
		},
		Example: "beam.pulse(beat.every(4))",
	})

	r.Register(&Entry{
		Kind:        KindNamespace,
		Name:        "rng",
		Path:        "rng",
		Description: "Deterministic noise and random helpers.",
		Methods: []Method{
			{
				Name:        "noise",
				Description: "A smooth noise signal seeded deterministically.",
				Params:      []Param{{Name: "seed", Type: "int", Description: "Noise seed.", Optional: true, Default: 0}},
				Returns:     "Signal",
			},
			{
				Name:        "range",
				Description: "A random float in [min, max), fixed per script run.",
				Params: []Param{
					{Name: "min", Type: "float", Description: "Lower bound (inclusive)."},
					{Name: "max", Type: "float", Description: "Upper bound (exclusive)."},
				},
				Returns: "float",
			},
		},
	})
}

// ---- Signal & audio types ----

func registerSignalTypes(r *Registry) {
	r.Register(&Entry{
		Kind:        KindType,
		Name:        "AudioInput",
		Path:        "types.AudioInput",
		Description: "An analyzable audio source exposing per-frame analysis signals.",
		Properties: []Property{
			{Name: "energy", Type: "Signal", Description: "Overall energy, normalized 0..1.", ReadOnly: true},
			{Name: "rms", Type: "Signal", Description: "Root-mean-square loudness.", ReadOnly: true},
			{Name: "peak", Type: "Signal", Description: "Peak amplitude of the current frame.", ReadOnly: true},
			{Name: "pitch", Type: "Signal", Description: "Estimated fundamental pitch, normalized.", ReadOnly: true},
			{Name: "bands", Type: "BandSet", Description: "Frequency bands keyed by name.", ReadOnly: true},
		},
		Methods: []Method{
			{
				Name:        "band",
				Description: "The named frequency band as a signal. Equivalent to bands[name].",
				Params:      []Param{{Name: "name", Type: "string", Description: "Band name.", Enum: []string{"sub", "low", "mid", "high", "presence"}}},
				Returns:     "Signal",
			},
		},
		Example: "inputs.mix.bands[\"low\"]",
	})

	r.Register(&Entry{
		Kind:        KindType,
		Name:        "Signal",
		Path:        "types.Signal",
		Description: "A per-frame scalar that can be shaped through a fluent chain and bound to entity properties.",
		Properties: []Property{
			{Name: "value", Type: "float", Description: "The current sampled value.", ReadOnly: true},
		},
		Methods: []Method{
			{
				Name:        "smooth",
				Description: "Exponential smoothing. Higher amounts react more slowly.",
				Params:      []Param{{Name: "amount", Type: "float", Description: "Smoothing amount.", Min: floatPtr(0), Max: floatPtr(1), Default: 0.5}},
				ChainsTo:    "Signal",
			},
			{
				Name:        "scale",
				Description: "Multiplies the signal by a constant factor.",
				Params:      []Param{{Name: "factor", Type: "float", Description: "Multiplier."}},
				ChainsTo:    "Signal",
			},
			{
				Name:        "clamp",
				Description: "Clamps the signal into [min, max].",
				Params: []Param{
					{Name: "min", Type: "float", Description: "Lower bound."},
					{Name: "max", Type: "float", Description: "Upper bound."},
				},
				ChainsTo: "Signal",
			},
			{
				Name:        "gate",
				Description: "Zeroes the signal below the threshold, passes it through above.",
				Params:      []Param{{Name: "threshold", Type: "float", Description: "Gate threshold.", Min: floatPtr(0), Max: floatPtr(1)}},
				ChainsTo:    "Signal",
			},
			{
				Name:        "lag",
				Description: "Delays the signal by a fixed number of seconds.",
				Params:      []Param{{Name: "seconds", Type: "float", Description: "Delay in seconds.", Min: floatPtr(0)}},
				ChainsTo:    "Signal",
			},
			{
				Name:        "pow",
				Description: "Raises the signal to a power, shaping its response curve.",
				Params:      []Param{{Name: "exponent", Type: "float", Description: "Exponent.", Default: 2.0}},
				ChainsTo:    "Signal",
			},
		},
		Example: "inputs.mix.energy.smooth(0.3).scale(2).clamp(0, 1)",
	})

	r.Register(&Entry{
		Kind:        KindType,
		Name:        "BandSet",
		Path:        "types.BandSet",
		Description: "Frequency bands of an audio input, indexed by quoted band name.",
		ElementType: "Signal",
		ElementKeys: []string{"sub", "low", "mid", "high", "presence"},
		Example:     "inputs.mix.bands[\"high\"].gate(0.4)",
	})

	r.Register(&Entry{
		Kind:        KindType,
		Name:        "StemMap",
		Path:        "types.StemMap",
		Description: "Separated stems of the project audio, indexed by quoted stem name.",
		ElementType: "AudioInput",
		ElementKeys: []string{"drums", "bass", "vocals", "other"},
		Example:     "inputs.stems[\"drums\"].energy",
	})

	r.Register(&Entry{
		Kind:        KindType,
		Name:        "Vec3",
		Path:        "types.Vec3",
		Description: "A three-component vector.",
		Properties: []Property{
			{Name: "x", Type: "float", Description: "X component."},
			{Name: "y", Type: "float", Description: "Y component."},
			{Name: "z", Type: "float", Description: "Z component."},
		},
		Methods: []Method{
			{Name: "length", Description: "Euclidean length of the vector.", Returns: "float"},
		},
	})

	r.Register(&Entry{
		Kind:        KindType,
		Name:        "Camera",
		Path:        "types.Camera",
		Description: "The scene camera.",
		Properties: []Property{
			{Name: "position", Type: "Vec3", Description: "Camera position."},
			{Name: "fov", Type: "float", Description: "Field of view in degrees."},
		},
		Methods: []Method{
			{
				Name:        "orbit",
				Description: "Orbits the camera around the scene origin.",
				Params:      []Param{{Name: "speed", Type: "float", Description: "Orbit speed in revolutions per minute."}},
				ChainsTo:    "Camera",
			},
			{
				Name:        "shake",
				Description: "Shakes the camera driven by a signal.",
				Params:      []Param{{Name: "signal", Type: "Signal", Description: "Shake intensity source."}},
				ChainsTo:    "Camera",
			},
		},
		Example: "scene.camera.orbit(0.2).shake(inputs.mix.bands[\"sub\"])",
	})
}

// ---- Scene entity types ----

// commonEntityProperties are shared by every entity type. The completion
// provider also uses this set as a fallback when a chain root cannot be
// resolved.
func commonEntityProperties() []Property {
	return []Property{
		{Name: "position", Type: "Vec3", Description: "World-space position."},
		{Name: "rotation", Type: "Vec3", Description: "Euler rotation in radians."},
		{Name: "scale", Type: "Vec3", Description: "Per-axis scale."},
		{Name: "opacity", Type: "float | Signal", Description: "Opacity, constant or signal-driven."},
		{Name: "visible", Type: "bool", Description: "Whether the entity is rendered."},
	}
}

func commonEntityMethods(entityType string) []Method {
	return []Method{
		{
			Name:        "bind",
			Description: "Binds an entity property to a signal, re-evaluated each frame.",
			Params: []Param{
				{Name: "property", Type: "string", Description: "Property to bind (e.g. \"opacity\", \"scale.x\")."},
				{Name: "signal", Type: "Signal", Description: "Driving signal."},
			},
			ChainsTo: entityType,
		},
		{
			Name:        "pulse",
			Description: "Briefly emphasizes the entity whenever the signal fires.",
			Params:      []Param{{Name: "signal", Type: "Signal", Description: "Trigger signal."}},
			ChainsTo:    entityType,
		},
		{
			Name:        "remove",
			Description: "Removes the entity from the scene.",
			Returns:     "void",
		},
	}
}

func registerEntityTypes(r *Registry) {
	r.Register(&Entry{
		Kind:        KindType,
		Name:        "LineStripEntity",
		Path:        "types.LineStripEntity",
		Description: "A polyline strip entity.",
		Properties: append(commonEntityProperties(),
			Property{Name: "width", Type: "float | Signal", Description: "Line width in world units."},
			Property{Name: "color", Type: "string", Description: "Line color (palette name or hex)."},
		),
		Methods: commonEntityMethods("LineStripEntity"),
		Example: "let beam = line.strip(#{ points: 64 }); beam.bind(\"width\", inputs.mix.energy)",
	})

	r.Register(&Entry{
		Kind:        KindType,
		Name:        "RibbonEntity",
		Path:        "types.RibbonEntity",
		Description: "A ribbon entity that leaves a fading trail.",
		Properties: append(commonEntityProperties(),
			Property{Name: "width", Type: "float | Signal", Description: "Ribbon width in world units."},
			Property{Name: "trail", Type: "float", Description: "Trail length in seconds."},
			Property{Name: "color", Type: "string", Description: "Ribbon color."},
		),
		Methods: commonEntityMethods("RibbonEntity"),
	})

	r.Register(&Entry{
		Kind:        KindType,
		Name:        "MeshEntity",
		Path:        "types.MeshEntity",
		Description: "A 3D mesh entity.",
		Properties: append(commonEntityProperties(),
			Property{Name: "wireframe", Type: "bool", Description: "Render as wireframe."},
			Property{Name: "color", Type: "string", Description: "Material color."},
		),
		Methods: commonEntityMethods("MeshEntity"),
	})

	r.Register(&Entry{
		Kind:        KindType,
		Name:        "ParticleEntity",
		Path:        "types.ParticleEntity",
		Description: "A particle system entity.",
		Properties: append(commonEntityProperties(),
			Property{Name: "count", Type: "int", Description: "Number of live particles."},
			Property{Name: "spread", Type: "float | Signal", Description: "Emission spread."},
			Property{Name: "color", Type: "string", Description: "Particle color."},
		),
		Methods: commonEntityMethods("ParticleEntity"),
	})
}

// ---- Config-map schemas ----

// Config-map schemas are registered under "<function path>.options" and
// looked up through Registry.ConfigMapFor.

func registerConfigMaps(r *Registry) {
	r.Register(&Entry{
		Kind:        KindConfigMap,
		Name:        "options",
		Path:        "fx.bloom.options",
		Parent:      "fx",
		Description: "Options accepted by fx.bloom.",
		ConfigMapKeys: []Param{
			{Name: "threshold", Type: "float", Description: "Luminance threshold above which pixels glow.", Default: 0.8, Min: floatPtr(0), Max: floatPtr(1)},
			{Name: "intensity", Type: "float", Description: "Glow intensity multiplier.", Default: 1.0, Min: floatPtr(0)},
			{Name: "radius", Type: "float", Description: "Blur radius of the glow.", Default: 4.0, Min: floatPtr(0)},
			{Name: "passes", Type: "int", Description: "Number of blur passes.", Default: 3, Min: floatPtr(1), Max: floatPtr(8)},
		},
	})

	r.Register(&Entry{
		Kind:        KindConfigMap,
		Name:        "options",
		Path:        "fx.blur.options",
		Parent:      "fx",
		Description: "Options accepted by fx.blur.",
		ConfigMapKeys: []Param{
			{Name: "amount", Type: "float | Signal", Description: "Blur strength, constant or signal-driven.", Default: 1.0, Min: floatPtr(0)},
			{Name: "direction", Type: "string", Description: "Blur direction.", Enum: []string{"horizontal", "vertical", "both"}, Default: "both"},
		},
	})

	r.Register(&Entry{
		Kind:        KindConfigMap,
		Name:        "options",
		Path:        "fx.feedback.options",
		Parent:      "fx",
		Description: "Options accepted by fx.feedback.",
		ConfigMapKeys: []Param{
			{Name: "decay", Type: "float", Description: "Per-frame decay of the feedback buffer.", Default: 0.95, Min: floatPtr(0), Max: floatPtr(1)},
			{Name: "zoom", Type: "float", Description: "Per-frame zoom applied to the buffer.", Default: 1.0},
			{Name: "rotate", Type: "float", Description: "Per-frame rotation in radians.", Default: 0.0},
		},
	})

	r.Register(&Entry{
		Kind:        KindConfigMap,
		Name:        "options",
		Path:        "fx.chroma.options",
		Parent:      "fx",
		Description: "Options accepted by fx.chroma.",
		ConfigMapKeys: []Param{
			{Name: "offset", Type: "float | Signal", Description: "Channel offset distance.", Default: 0.005},
			{Name: "angle", Type: "float", Description: "Offset angle in radians.", Default: 0.0},
		},
	})

	r.Register(&Entry{
		Kind:        KindConfigMap,
		Name:        "options",
		Path:        "line.strip.options",
		Parent:      "line",
		Description: "Options accepted by line.strip.",
		ConfigMapKeys: []Param{
			{Name: "points", Type: "int", Description: "Number of points in the strip.", Default: 32, Min: floatPtr(2)},
			{Name: "width", Type: "float", Description: "Initial line width.", Default: 1.0, Min: floatPtr(0)},
			{Name: "color", Type: "string", Description: "Line color (palette name or hex)."},
			{Name: "closed", Type: "bool", Description: "Join the last point back to the first.", Default: false},
		},
	})

	r.Register(&Entry{
		Kind:        KindConfigMap,
		Name:        "options",
		Path:        "line.ribbon.options",
		Parent:      "line",
		Description: "Options accepted by line.ribbon.",
		ConfigMapKeys: []Param{
			{Name: "segments", Type: "int", Description: "Number of ribbon segments.", Default: 64, Min: floatPtr(2)},
			{Name: "width", Type: "float", Description: "Initial ribbon width.", Default: 1.0, Min: floatPtr(0)},
			{Name: "color", Type: "string", Description: "Ribbon color."},
			{Name: "trail", Type: "float", Description: "Trail length in seconds.", Default: 0.5, Min: floatPtr(0)},
		},
	})

	r.Register(&Entry{
		Kind:        KindConfigMap,
		Name:        "options",
		Path:        "mesh.cube.options",
		Parent:      "mesh",
		Description: "Options accepted by mesh.cube.",
		ConfigMapKeys: []Param{
			{Name: "size", Type: "float", Description: "Edge length.", Default: 1.0, Min: floatPtr(0)},
			{Name: "color", Type: "string", Description: "Material color."},
			{Name: "wireframe", Type: "bool", Description: "Render as wireframe.", Default: false},
		},
	})

	r.Register(&Entry{
		Kind:        KindConfigMap,
		Name:        "options",
		Path:        "mesh.sphere.options",
		Parent:      "mesh",
		Description: "Options accepted by mesh.sphere.",
		ConfigMapKeys: []Param{
			{Name: "size", Type: "float", Description: "Sphere radius.", Default: 1.0, Min: floatPtr(0)},
			{Name: "color", Type: "string", Description: "Material color."},
			{Name: "wireframe", Type: "bool", Description: "Render as wireframe.", Default: false},
			{Name: "segments", Type: "int", Description: "Sphere tessellation segments.", Default: 32, Min: floatPtr(4), Max: floatPtr(256)},
		},
	})

	r.Register(&Entry{
		Kind:        KindConfigMap,
		Name:        "options",
		Path:        "mesh.particles.options",
		Parent:      "mesh",
		Description: "Options accepted by mesh.particles.",
		ConfigMapKeys: []Param{
			{Name: "count", Type: "int", Description: "Maximum number of particles.", Default: 1000, Min: floatPtr(1), Max: floatPtr(100000)},
			{Name: "size", Type: "float", Description: "Particle size.", Default: 0.1, Min: floatPtr(0)},
			{Name: "spread", Type: "float", Description: "Emission spread.", Default: 1.0, Min: floatPtr(0)},
			{Name: "color", Type: "string", Description: "Particle color."},
		},
	})
}

// ---- Lifecycle hooks ----

func registerLifecycle(r *Registry) {
	r.Register(&Entry{
		Kind:        KindLifecycle,
		Name:        "onLoad",
		Path:        "onLoad",
		Description: "Runs once when the script is loaded. Build the scene here.",
		Methods: []Method{
			{Name: "onLoad", Description: "Runs once when the script is loaded.", Returns: "void"},
		},
		Example: "onLoad(() => { scene.background = \"midnight\" })",
	})

	r.Register(&Entry{
		Kind:        KindLifecycle,
		Name:        "onFrame",
		Path:        "onFrame",
		Description: "Runs every rendered frame.",
		Methods: []Method{
			{
				Name:        "onFrame",
				Description: "Runs every rendered frame.",
				Params:      []Param{{Name: "dt", Type: "float", Description: "Seconds since the previous frame."}},
				Returns:     "void",
			},
		},
	})

	r.Register(&Entry{
		Kind:        KindLifecycle,
		Name:        "onBeat",
		Path:        "onBeat",
		Description: "Runs on every detected beat.",
		Methods: []Method{
			{
				Name:        "onBeat",
				Description: "Runs on every detected beat.",
				Params:      []Param{{Name: "index", Type: "int", Description: "Beat index since playback start."}},
				Returns:     "void",
			},
		},
	})

	r.Register(&Entry{
		Kind:        KindLifecycle,
		Name:        "onBar",
		Path:        "onBar",
		Description: "Runs at the start of every bar.",
		Methods: []Method{
			{
				Name:        "onBar",
				Description: "Runs at the start of every bar.",
				Params:      []Param{{Name: "index", Type: "int", Description: "Bar index since playback start."}},
				Returns:     "void",
			},
		},
	})
}

// ---- Helper functions ----

func registerHelpers(r *Registry) {
	r.Register(&Entry{
		Kind:        KindHelper,
		Name:        "lerp",
		Path:        "lerp",
		Description: "Linear interpolation between a and b.",
		Methods: []Method{
			{
				Name:        "lerp",
				Description: "Linear interpolation between a and b.",
				Params: []Param{
					{Name: "a", Type: "float", Description: "Start value."},
					{Name: "b", Type: "float", Description: "End value."},
					{Name: "t", Type: "float", Description: "Interpolation factor, typically 0..1."},
				},
				Returns: "float",
			},
		},
	})

	r.Register(&Entry{
		Kind:        KindHelper,
		Name:        "clamp",
		Path:        "clamp",
		Description: "Clamps a value into [min, max].",
		Methods: []Method{
			{
				Name:        "clamp",
				Description: "Clamps a value into [min, max].",
				Params: []Param{
					{Name: "value", Type: "float", Description: "The value to clamp."},
					{Name: "min", Type: "float", Description: "Lower bound."},
					{Name: "max", Type: "float", Description: "Upper bound."},
				},
				Returns: "float",
			},
		},
	})

	r.Register(&Entry{
		Kind:        KindHelper,
		Name:        "mapRange",
		Path:        "mapRange",
		Description: "Remaps a value from one range to another.",
		Methods: []Method{
			{
				Name:        "mapRange",
				Description: "Remaps a value from one range to another.",
				Params: []Param{
					{Name: "value", Type: "float", Description: "The value to remap."},
					{Name: "inMin", Type: "float", Description: "Input range lower bound."},
					{Name: "inMax", Type: "float", Description: "Input range upper bound."},
					{Name: "outMin", Type: "float", Description: "Output range lower bound."},
					{Name: "outMax", Type: "float", Description: "Output range upper bound."},
				},
				Returns: "float",
			},
		},
	})

	r.Register(&Entry{
		Kind:        KindHelper,
		Name:        "osc",
		Path:        "osc",
		Description: "A free-running sine oscillator signal.",
		Methods: []Method{
			{
				Name:        "osc",
				Description: "A free-running sine oscillator signal.",
				Params:      []Param{{Name: "frequency", Type: "float", Description: "Oscillation frequency in Hz.", Min: floatPtr(0)}},
				Returns:     "Signal",
			},
		},
		Example: "beam.bind(\"rotation.y\", osc(0.5))",
	})
}
