package prim

import "fmt"

// Function is the semantic tag of a prototype or of one of its variants.
type Function uint16

const (
	FuncUnknown Function = iota
	FuncPin
	FuncConnect
	FuncArt
	FuncResistor
	FuncCapacitor
	FuncGround
	FuncPower
	FuncSource
	FuncGlobal
	FuncOffPage
	FuncBuffer
	FuncAnd
	FuncOr
	FuncXor
	FuncMux
	FuncSwitch

	// Transistor functions follow, TransistorKinds of them per polarity for
	// three-terminal devices and then again for four-terminal devices. Use
	// [TransistorFunction] to name one.
	funcTransistorBase
)

var functionNames = [...]string{
	FuncUnknown:   "UNKNOWN",
	FuncPin:       "PIN",
	FuncConnect:   "CONNECT",
	FuncArt:       "ART",
	FuncResistor:  "RESIST",
	FuncCapacitor: "CAPAC",
	FuncGround:    "CONGROUND",
	FuncPower:     "CONPOWER",
	FuncSource:    "SOURCE",
	FuncGlobal:    "GLOBAL",
	FuncOffPage:   "OFFPAGE",
	FuncBuffer:    "BUFFER",
	FuncAnd:       "GATEAND",
	FuncOr:        "GATEOR",
	FuncXor:       "GATEXOR",
	FuncMux:       "MUX",
	FuncSwitch:    "SWITCH",
}

// TransistorKind enumerates the transistor variants of one polarity.
type TransistorKind int

const (
	KindPlain TransistorKind = iota
	KindDepletion
	KindNative
	KindFloatingGate
	KindLowThreshold
	KindHighThreshold
	KindHighVoltage1
	KindHighVoltage2
	KindHighVoltage3
	KindNanotube
	TransistorKinds
)

var kindSuffixes = [TransistorKinds]string{"", "D", "NT", "FG", "VTL", "VTH", "HV1", "HV2", "HV3", "CN"}

func (k TransistorKind) String() string {
	if k >= 0 && k < TransistorKinds {
		if k == KindPlain {
			return "plain"
		}
		return kindSuffixes[k]
	}
	return fmt.Sprintf("TransistorKind(%d)", int(k))
}

// Flags returns the generator inputs of a transistor of kind k.
func (k TransistorKind) Flags(nType, fourTerminal bool) TransistorFlags {
	f := TransistorFlags{NTypeLike: nType, FourthTerminal: fourTerminal}
	switch k {
	case KindDepletion:
		f.Depletion = true
	case KindNative:
		f.Native = true
	case KindFloatingGate:
		f.FloatingGate = true
	case KindLowThreshold:
		f.ThresholdShift = -1
	case KindHighThreshold:
		f.ThresholdShift = +1
	case KindHighVoltage1:
		f.HighVoltageStages = 1
	case KindHighVoltage2:
		f.HighVoltageStages = 2
	case KindHighVoltage3:
		f.HighVoltageStages = 3
	case KindNanotube:
		f.CarbonNanotube = true
	}
	return f
}

// TransistorFunction returns the function tag of a transistor.
func TransistorFunction(k TransistorKind, nType, fourTerminal bool) Function {
	f := funcTransistorBase + Function(2*k)
	if !nType {
		f++
	}
	if fourTerminal {
		f += 2 * Function(TransistorKinds)
	}
	return f
}

const funcLast = funcTransistorBase + 4*Function(TransistorKinds)

// IsTransistor reports whether f is one of the transistor functions.
func (f Function) IsTransistor() bool {
	return f >= funcTransistorBase && f < funcLast
}

func (f Function) String() string {
	if int(f) < len(functionNames) {
		return functionNames[f]
	}
	if !f.IsTransistor() {
		return fmt.Sprintf("Function(%d)", f)
	}
	i := int(f - funcTransistorBase)
	four := ""
	if i >= 2*int(TransistorKinds) {
		four = "4"
		i -= 2 * int(TransistorKinds)
	}
	pol := "NMOS"
	if i%2 == 1 {
		pol = "PMOS"
	}
	return "TRA" + four + pol + kindSuffixes[i/2]
}

// ParseFunction is the inverse of [Function.String].
func ParseFunction(s string) (Function, error) {
	for f := Function(0); f < funcLast; f++ {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("prim: unknown function %q", s)
}
