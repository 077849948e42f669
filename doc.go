/*
Package ttlsim simulates digital logic at the transistor level: NMOS and
PMOS switches wired into pins and wires, settled one discrete tick at a
time.

Unlike a boolean-gate simulator, a wire here can end up driven high or
low (by Strong or Weak pins), HighImpedance, or in conflict (Error)
depending on what every pin attached to it is driving, and resolving that from the five-counter
driveAccumulator is the one piece of the package that has to stay O(1) per
change rather than rescan every pin on every tick.

Tick, Settle, and SettleBounded drive the simulation; Print dumps a device
tree for debugging. Constant, TestPin, and Transistor are the three
primitives everything else is built from.

The sub-package gates provides a library of logic gates built entirely
out of Transistors, the way a real CMOS cell library would be; the
sub-package circuits builds small composite circuits (adders, an SR latch)
from those gates.
*/
package ttlsim
