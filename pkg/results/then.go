package results

// Then calls onSuccess with the value of input if input succeeded and returns
// its result unchanged. A failed input is carried over into Of[Out] with its
// errors untouched and onSuccess is never called.
func Then[In, Out any](input Of[In], onSuccess func(r In) Of[Out]) Of[Out] {
	if input.Failed() {
		return FailFrom[Out](input)
	}
	return onSuccess(input.Value())
}

// ThenDo is Then for follow-ups that produce no value.
func ThenDo[In any](input Of[In], onSuccess func(r In) Result) Result {
	if input.Failed() {
		return FailFrom[struct{}](input).Result
	}
	return onSuccess(input.Value())
}

// Map transforms the successful value.
func Map[In, Out any](input Of[In], onSuccess func(r In) Out) Of[Out] {
	if input.Failed() {
		return FailFrom[Out](input)
	}

	out := OkOf(onSuccess(input.Value()))
	out.logs = input.logs
	return out
}

// Tee runs a side effect on success and returns input unchanged.
func Tee[T any](input Of[T], onSuccess func(r T)) Of[T] {
	if input.IsSuccess() {
		onSuccess(input.Value())
	}
	return input
}

// Finally reduces the result to a plain value.
func Finally[In, Out any](input Of[In],
	onSuccess func(r In) Out,
	onFailure func(errs []Error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Errors())
}
