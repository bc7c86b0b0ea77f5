package internal

import "encoding/json"

func Decode[T any](data []byte) (T, error) {
	var res T
	err := json.Unmarshal(data, &res)
	return res, err
}

func DecodeAll[T any](items []string) ([]T, error) {
	res := make([]T, 0, len(items))
	for _, item := range items {
		v, err := Decode[T]([]byte(item))
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}
