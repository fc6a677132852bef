package selfcore

// runBootstrap populates the trait objects, the singletons, and the
// lobby with the library behavior spec 6.4 describes as written in the
// language itself rather than as a Go primitive, following the
// teacher's finalInit pattern of running fixed source strings through
// the VM once it is far enough along to execute code. Each trait object
// already exists by the time this runs (NewVM builds them before
// calling here); slots are grown onto them with the same
// _AddSlotsIfAbsent: primitive a user program would use to extend a
// prototype, rather than through any special bootstrap-only path.
func (vm *VM) runBootstrap() error {
	sources := []string{
		bootstrapNumber,
		bootstrapBooleanAndNil,
		bootstrapBlock,
		bootstrapString,
		bootstrapVector,
		bootstrapLobby,
	}
	for _, src := range sources {
		if _, err := vm.Execute(src); err != nil {
			return err
		}
	}
	return nil
}

const bootstrapNumber = `
traitsNumber _AddSlotsIfAbsent: (|
	+ other = (self _NumAdd: other).
	- other = (self _NumSub: other).
	* other = (self _NumMul: other).
	/ other = (self _NumDiv: other).
	% other = (self _NumMod: other).
	< other = (self _NumLt: other).
	> other = (other < self).
	<= other = ((self > other) not).
	>= other = ((self < other) not).
	= other = (self _Equal: other).
	printString = (self _NumToString).
	to: limit Do: body = (
		self <= limit ifTrue: [
			body value: self.
			(self + 1) to: limit Do: body.
		].
	).
	to: limit By: step Do: body = (
		step > 0
			ifTrue: [self <= limit ifTrue: [body value: self. (self + step) to: limit By: step Do: body.]]
			False: [self >= limit ifTrue: [body value: self. (self + step) to: limit By: step Do: body.]].
	).
	factorial = (
		self <= 1 ifTrue: [1] False: [self * (self - 1) factorial].
	).
	fibonacci = (
		self <= 1 ifTrue: [self] False: [(self - 1) fibonacci + (self - 2) fibonacci].
	).
|).
`

const bootstrapBooleanAndNil = `
nil _AddSlotsIfAbsent: (|
	isNil = (true).
	clone = (self).
	ifNil: block = (block value).
	ifNotNil: block = (self).
	printString = ('nil').
|).
true _AddSlotsIfAbsent: (|
	isNil = (false).
	clone = (self).
	ifNil: block = (self).
	ifNotNil: block = (block value: self).
	not = (false).
	& other = (other value).
	| other = (self).
	ifTrue: block = (block value).
	ifFalse: block = (nil).
	ifTrue: tblock False: fblock = (tblock value).
	printString = ('true').
|).
false _AddSlotsIfAbsent: (|
	isNil = (false).
	clone = (self).
	ifNil: block = (self).
	ifNotNil: block = (block value: self).
	not = (true).
	& other = (self).
	| other = (other value).
	ifTrue: block = (nil).
	ifFalse: block = (block value).
	ifTrue: tblock False: fblock = (fblock value).
	printString = ('false').
|).
`

const bootstrapBlock = `
traitsBlock _AddSlotsIfAbsent: (|
	whileTrue: body = (
		self value ifTrue: [body value. self whileTrue: body].
	).
	whileFalse: body = (
		self value ifFalse: [body value. self whileFalse: body].
	).
	repeat = (
		self value.
		self repeat.
	).
|).
`

const bootstrapString = `
traitsString _AddSlotsIfAbsent: (|
	size = (self _StringSize).
	at: i = (self _StringAt: i).
	, other = (self _StringConcat: other).
	from: start To: end = (self _StringFrom: start To: end).
	isEmpty = (self size = 0).
	printString = ('\'' , self , '\'').
|).
`

const bootstrapVector = `
traitsVector _AddSlotsIfAbsent: (|
	clone = (self _VectorClone: 0).
	clone: n = (self _VectorClone: n).
	size = (self _VectorSize).
	add: v = (self _VectorAdd: v).
	at: i = (self _VectorAt: i).
	at: i Put: v = (self _VectorAt: i Put: v).
	from: start To: end = (self _VectorFrom: start To: end).
	& other = (self add: other).
	do: body = (self do: body From: 0).
	do: body From: i = (
		i < self size ifTrue: [
			body value: (self at: i).
			self do: body From: (i + 1).
		].
	).
	select: body = (self select: body From: 0 Into: (traitsVector clone)).
	select: body From: i Into: acc = (
		i >= self size
			ifTrue: [acc]
			False: [
				(body value: (self at: i)) ifTrue: [acc add: (self at: i)].
				self select: body From: (i + 1) Into: acc.
			].
	).
	collect: body = (self collect: body From: 0 Into: (traitsVector clone)).
	collect: body From: i Into: acc = (
		i >= self size
			ifTrue: [acc]
			False: [
				acc add: (body value: (self at: i)).
				self collect: body From: (i + 1) Into: acc.
			].
	).
	join: sep = (self join: sep From: 0 Into: '').
	join: sep From: i Into: acc = (
		i >= self size
			ifTrue: [acc]
			False: [
				(i + 1) >= self size
					ifTrue: [self join: sep From: (i + 1) Into: (acc , (self at: i) printString)]
					False: [self join: sep From: (i + 1) Into: (acc , (self at: i) printString , sep)].
			].
	).
	printString = ('(' , (self join: ', ') , ')').
|).
`

const bootstrapLobby = `
lobby _AddSlotsIfAbsent: (|
	printString = ('lobby').
	isNil = (false).
	clone = (self _Clone).
	= other = (self _Equal: other).
	& other = ((traitsVector clone add: self) add: other).
|).
`
